package utils

import "math"

// Delta 单个 tick 的时间步长
//
// 除了经过的毫秒数之外，还预先计算了本 tick 的场地自转（arena spin）
// 旋转矩阵的 cos/sin，所有受自转影响的实体共用同一个变换。
// Delta 是派生值，每个 tick 重新构造，不做存储。
type Delta struct {
	Ms  float64 // 本 tick 经过的毫秒数
	Cos float64 // cos(Ms·ω)
	Sin float64 // sin(Ms·ω)
}

// NewDelta 根据经过的毫秒数和自转角速度（度/秒）构造 Delta
func NewDelta(ms float64, spinDegreesPerSecond float64) Delta {
	angle := ms * spinDegreesPerSecond * (math.Pi / 180) / 1000
	return Delta{
		Ms:  ms,
		Cos: math.Cos(angle),
		Sin: math.Sin(angle),
	}
}

// Rotate 对向量应用本 tick 的自转
func (d Delta) Rotate(v Vec) Vec {
	return v.Rotate(d.Cos, d.Sin)
}

// RotateAround 绕 center 旋转点 p: center + R·(p − center)
func (d Delta) RotateAround(p, center Vec) Vec {
	return center.Add(d.Rotate(p.Sub(center)))
}
