package components

// ArenaSpinComponent 标记实体随场地一起绕中心旋转
type ArenaSpinComponent struct{}

// PlayerComponent 标记玩家实体
type PlayerComponent struct{}

// CenterComponent 标记需要保护的中心实体
type CenterComponent struct{}

// EnemyComponent 标记敌人实体
//
// 拥有该组件的存活实体构成敌人列表（碰撞检测的对象）。
// 召唤中的 ProtoBasic 不带该组件。
type EnemyComponent struct {
	GivesPoints bool // 被消灭时是否加分
}
