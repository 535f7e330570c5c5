// Package types 定义共享的基础类型
package types

// EnemyType 定义敌人的原型（archetype）
// BehaviorSystem 根据该值分发到对应的行为处理函数
type EnemyType int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyType = iota

	EnemyBasic      // 直线飞向中心，定期重新瞄准
	EnemyWaiting    // 休眠一段随机时间后飞向中心
	EnemyWiz        // 原地不动，定期召唤 ProtoBasic
	EnemyGreyGoo    // 自我复制，克隆体不给分
	EnemyScared     // 玩家靠近时逃离中心
	EnemySwirl      // 螺旋接近中心
	EnemyTp         // 定期瞬移
	EnemyProtoBasic // 召唤动画：飞到目标点后变成 Basic（不计入敌人列表）
)

// 敌人原型名称（用于配置文件与日志）
const (
	EnemyNameBasic      = "basic"
	EnemyNameWaiting    = "waiting"
	EnemyNameWiz        = "wiz"
	EnemyNameGreyGoo    = "greyGoo"
	EnemyNameScared     = "scared"
	EnemyNameSwirl      = "swirl"
	EnemyNameTp         = "tp"
	EnemyNameProtoBasic = "protoBasic"
)

var enemyTypeNames = map[EnemyType]string{
	EnemyBasic:      EnemyNameBasic,
	EnemyWaiting:    EnemyNameWaiting,
	EnemyWiz:        EnemyNameWiz,
	EnemyGreyGoo:    EnemyNameGreyGoo,
	EnemyScared:     EnemyNameScared,
	EnemySwirl:      EnemyNameSwirl,
	EnemyTp:         EnemyNameTp,
	EnemyProtoBasic: EnemyNameProtoBasic,
}

// String 返回敌人类型名称
func (t EnemyType) String() string {
	if name, ok := enemyTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEnemyType 将名称解析为敌人类型，未知名称返回 EnemyUnknown
func ParseEnemyType(name string) EnemyType {
	for t, n := range enemyTypeNames {
		if n == name {
			return t
		}
	}
	return EnemyUnknown
}
