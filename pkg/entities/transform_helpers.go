package entities

import (
	"math"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/utils"
)

// SetVelocity 设置速度，并在速度足够大时更新绘制朝向
//
// 朝向 = atan2(v.X, -v.Y)，0 表示朝上。
// |v|² ≤ epsilon 时保留原朝向：松开斜向按键后飞船保持最后的朝向。
func SetVelocity(t *components.TransformComponent, v utils.Vec, epsilon float64) {
	t.Vel = v
	if v.MagnitudeSq() > epsilon {
		t.Angle = math.Atan2(v.X, -v.Y)
	}
}
