package components

import "github.com/decker502/coredefense/pkg/utils"

// TransformComponent 实体的位置、速度与朝向
//
// 坐标为画布像素坐标（y 轴向下），速度单位为 像素/毫秒。
// Angle 为绘制朝向（弧度），0 表示朝上；只在速度足够大时更新。
type TransformComponent struct {
	Pos   utils.Vec
	Vel   utils.Vec
	Angle float64
}
