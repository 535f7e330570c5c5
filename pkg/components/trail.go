package components

// TrailComponent 移动尾迹发射器
// 倒计时到期且实体在移动时，从实体尾部发射一个粒子
type TrailComponent struct {
	TimeToParticle float64 // 距下一个尾迹粒子的剩余时间（毫秒）
	ParticleSpeed  float64 // 尾迹粒子速度（像素/毫秒），0 表示粒子静止
}
