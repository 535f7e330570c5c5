package components

// LifetimeComponent 管理实体的剩余寿命
// 用于自动清理短暂存在的实体（如粒子）
type LifetimeComponent struct {
	Remaining float64 // 剩余寿命（毫秒），小于 0 时实体被删除
	IsExpired bool    // 是否已过期
}
