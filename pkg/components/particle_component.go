package components

import "github.com/decker502/coredefense/pkg/utils"

// ParticleComponent 装饰性粒子（尾迹与爆炸碎片）
//
// 粒子位置保存在 TransformComponent 中；粒子不参与碰撞，也不随场地旋转。
// 寿命由 LifetimeComponent 管理，颜色由 RenderComponent 保存。
type ParticleComponent struct {
	Vel    utils.Vec // 速度（像素/毫秒）
	AngVel float64   // 角速度（弧度/毫秒）
}
