package utils

import (
	"math"
	"math/rand"
)

// Vec 二维向量（值类型，不可变）
// 所有运算都返回新的向量，不修改接收者
type Vec struct {
	X, Y float64
}

// ZeroVec 零向量
var ZeroVec = Vec{}

// V 构造向量的便捷函数
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add 向量相加
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减 (v - o)
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量数乘
func (v Vec) Scale(n float64) Vec {
	return Vec{X: v.X * n, Y: v.Y * n}
}

// MagnitudeSq 返回模长的平方（避免开方）
func (v Vec) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude 返回模长
func (v Vec) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// Unit 返回单位向量
// 零向量返回零向量，不会产生 NaN
func (v Vec) Unit() Vec {
	mag := v.Magnitude()
	if mag == 0 {
		return ZeroVec
	}
	return v.Scale(1 / mag)
}

// Rotate 用预先计算好的 cos/sin 旋转向量
func (v Vec) Rotate(cos, sin float64) Vec {
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Perp 逆时针旋转 90 度（屏幕坐标系下 y 轴向下）
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// RandomInRadius 返回长度为 r、方向均匀随机的向量
//
// 注意：角度均匀分布，而不是面积均匀分布：
//
//	θ = U(0, 2π), 结果 = (r·cosθ, r·sinθ)
//
// 参数：
//   - r: 半径
//   - rng: 随机源，为 nil 时使用全局随机源
func RandomInRadius(r float64, rng *rand.Rand) Vec {
	theta := RandFloat64(rng) * 2 * math.Pi
	return Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// VelTowardsCenter 返回从 pos 指向 center、大小为 speed 的速度
// speed 为负值时方向相反（远离中心）
func VelTowardsCenter(pos, center Vec, speed float64) Vec {
	return center.Sub(pos).Unit().Scale(speed)
}

// VelPerpCenter 返回垂直于中心方向的速度（绕中心切向）
func VelPerpCenter(pos, center Vec, speed float64) Vec {
	return VelTowardsCenter(pos, center, speed).Perp()
}

// VelCenterBlend 朝向中心分量与切向分量的线性组合
//
// 结果 = towards·towardsSpeed + perp(towards)·perpSpeed，
// 其中 towards 为指向中心的单位向量。用于螺旋接近（Swirl）和瞬移位移（Tp）。
func VelCenterBlend(pos, center Vec, towardsSpeed, perpSpeed float64) Vec {
	towards := VelTowardsCenter(pos, center, 1)
	return Vec{
		X: towards.X*towardsSpeed - towards.Y*perpSpeed,
		Y: towards.Y*towardsSpeed + towards.X*perpSpeed,
	}
}
