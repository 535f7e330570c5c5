// Package render 实现基于 ebiten 的绘制后端
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// textScale basicfont 7x13 放大到接近 48px 字号
const textScale = 3.5

// starSize 星星边长（画布像素）
const starSize = 2

// EbitenRenderer 在 ebiten 图像上绘制快照
//
// 画布坐标按比例缩放并居中到目标图像；飞船与中心的图形按名称缓存。
type EbitenRenderer struct {
	target  *ebiten.Image
	scale   float64
	offsetX float64
	offsetY float64

	face   *text.GoXFace
	pixel  *ebiten.Image
	images map[string]*ebiten.Image
}

// NewEbitenRenderer 创建渲染器
func NewEbitenRenderer() *EbitenRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &EbitenRenderer{
		face:   text.NewGoXFace(basicfont.Face7x13),
		pixel:  pixel,
		images: make(map[string]*ebiten.Image),
		scale:  1,
	}
}

// SetTarget 设置本帧的绘制目标（通常是 ebiten 的 screen）
func (r *EbitenRenderer) SetTarget(screen *ebiten.Image) {
	r.target = screen
}

// Begin 根据目标尺寸计算画布缩放并清屏
func (r *EbitenRenderer) Begin(width, height int) {
	if r.target == nil {
		return
	}
	b := r.target.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	r.scale = math.Min(sw/float64(width), sh/float64(height))
	r.offsetX = (sw - float64(width)*r.scale) / 2
	r.offsetY = (sh - float64(height)*r.scale) / 2
	r.target.Fill(color.Black)
}

// DrawSprite 绘制一个对象
func (r *EbitenRenderer) DrawSprite(s systems.Sprite) error {
	if r.target == nil {
		return fmt.Errorf("no render target")
	}

	switch s.Kind {
	case components.SpriteStarField:
		r.drawStarField(s)
	case components.SpriteParticle:
		r.drawRotated(r.pixel, s.Pos.X, s.Pos.Y, s.Angle, s.Size, s.Color)
	case components.SpriteShip, components.SpriteCore:
		img := r.shapeImage(s)
		r.drawRotated(img, s.Pos.X, s.Pos.Y, s.Angle, s.Size, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	case components.SpriteText:
		r.drawText(s)
	default:
		return fmt.Errorf("unknown sprite kind %d", s.Kind)
	}
	return nil
}

// End 结束本帧
func (r *EbitenRenderer) End() {}

func (r *EbitenRenderer) drawStarField(s systems.Sprite) {
	w := float32(r.target.Bounds().Dx())
	h := float32(r.target.Bounds().Dy())
	vector.DrawFilledRect(r.target, 0, 0, w, h, s.Fill, false)

	size := float32(starSize * r.scale)
	for _, star := range s.Stars {
		x, y := r.toScreen(star.X, star.Y)
		vector.DrawFilledRect(r.target, float32(x), float32(y), size, size, s.Color, false)
	}
}

// drawRotated 以 (x, y) 为中心、边长 size 绘制旋转后的图像
func (r *EbitenRenderer) drawRotated(img *ebiten.Image, x, y, angle, size float64, tint color.Color) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(r.offsetX, r.offsetY)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

func (r *EbitenRenderer) drawText(s systems.Sprite) {
	op := &text.DrawOptions{}
	// 快照中的 y 是基线
	op.GeoM.Translate(0, -r.face.Metrics().HAscent)
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(s.Pos.X, s.Pos.Y)
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(r.offsetX, r.offsetY)
	op.ColorScale.ScaleWithColor(s.Color)
	text.Draw(r.target, s.Text, r.face, op)
}

func (r *EbitenRenderer) shapeImage(s systems.Sprite) *ebiten.Image {
	if img, ok := r.images[s.Name]; ok {
		return img
	}
	// 以两倍分辨率生成，缩放后边缘更平滑
	size := int(math.Max(s.Size, 1)) * 2
	var img *ebiten.Image
	if s.Kind == components.SpriteCore {
		img = ebiten.NewImageFromImage(CoreImage(size, s.Color))
	} else {
		img = ebiten.NewImageFromImage(ShipImage(size, s.Color))
	}
	r.images[s.Name] = img
	return img
}

func (r *EbitenRenderer) toScreen(x, y float64) (float64, float64) {
	return x*r.scale + r.offsetX, y*r.scale + r.offsetY
}
