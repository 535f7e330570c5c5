package components

import (
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// BehaviorComponent 敌人原型的行为状态
// BehaviorSystem 根据 Type 分发到对应的处理函数，各原型只使用自己需要的字段
//
// 计时器均为毫秒倒计时：每 tick 减去 delta，≤ 0 时触发一次并重置为完整值。
type BehaviorComponent struct {
	Type types.EnemyType

	// RetargetTimer 重新瞄准倒计时（Basic / GreyGoo / Swirl / ProtoBasic）
	// 初始为 0，第一次更新即触发
	RetargetTimer float64

	// ActionTimer 原型特殊动作倒计时
	//   - Waiting: 休眠剩余时间
	//   - Wiz: 距下次召唤
	//   - GreyGoo: 距下次复制
	//   - Tp: 距下次瞬移
	ActionTimer float64

	// Activated Waiting 是否已结束休眠
	Activated bool

	// SpawnsLeft GreyGoo 剩余复制次数
	SpawnsLeft int

	// Target ProtoBasic 的降落点
	Target utils.Vec
}
