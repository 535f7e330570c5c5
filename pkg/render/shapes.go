package render

import (
	"image"
	"image/color"
	"math"
)

// ShipImage 生成朝上的飞船图形（箭头形三角，底边中部内凹）
//
// 参数：
//   - size: 图像边长（像素）
//   - c: 填充色
func ShipImage(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	nose := point{s / 2, 0}
	left := point{0, s}
	right := point{s, s}
	notch := point{s / 2, s * 0.7}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := point{float64(x) + 0.5, float64(y) + 0.5}
			if inTriangle(p, nose, left, notch) || inTriangle(p, nose, notch, right) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// CoreImage 生成中心的图形：实心圆加一圈深色内环
func CoreImage(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	ring := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			switch {
			case d <= r*0.45:
				img.SetNRGBA(x, y, ring)
			case d <= r:
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

type point struct{ x, y float64 }

func inTriangle(p, a, b, c point) bool {
	d1 := edge(p, a, b)
	d2 := edge(p, b, c)
	d3 := edge(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(p, a, b point) float64 {
	return (p.x-b.x)*(a.y-b.y) - (a.x-b.x)*(p.y-b.y)
}
