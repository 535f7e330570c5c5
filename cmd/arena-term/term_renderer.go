package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// shipGlyphs 按朝向（从正上方顺时针每 45°）选择的飞船字符
var shipGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

const (
	starGlyph     = '.'
	particleGlyph = '·'
	coreGlyph     = '@'
)

// TermRenderer 把画布快照绘制到 tcell 屏幕
//
// 正方形画布映射到终端中能放下的最大网格；终端字符约为 1:2 的竖长方形，
// 因此网格列数是行数的两倍。
type TermRenderer struct {
	screen tcell.Screen

	cols, rows   int
	offX, offY   int
	cellW, cellH float64
	background   tcell.Color
}

// NewTermRenderer 创建终端渲染器
func NewTermRenderer(screen tcell.Screen) *TermRenderer {
	return &TermRenderer{screen: screen, background: tcell.ColorBlack}
}

// Begin 根据当前终端尺寸计算网格并清屏
func (r *TermRenderer) Begin(width, height int) {
	w, h := r.screen.Size()
	r.cols = min(w, h*2)
	r.rows = r.cols / 2
	if r.cols <= 0 || r.rows <= 0 {
		r.cols, r.rows = 0, 0
	} else {
		r.cellW = float64(width) / float64(r.cols)
		r.cellH = float64(height) / float64(r.rows)
	}
	r.offX = (w - r.cols) / 2
	r.offY = (h - r.rows) / 2
	r.background = tcell.ColorBlack
	r.screen.Clear()
}

// DrawSprite 绘制一个对象
func (r *TermRenderer) DrawSprite(s systems.Sprite) error {
	if r.cols == 0 {
		return nil
	}

	switch s.Kind {
	case components.SpriteStarField:
		r.drawStarField(s)
	case components.SpriteParticle:
		r.put(s.Pos.X, s.Pos.Y, particleGlyph, s.Color)
	case components.SpriteShip:
		r.put(s.Pos.X, s.Pos.Y, ShipGlyph(s.Angle), s.Color)
	case components.SpriteCore:
		r.drawDisc(s)
	case components.SpriteText:
		r.drawText(s)
	default:
		return fmt.Errorf("unsupported sprite kind %v", s.Kind)
	}
	return nil
}

// End 把本帧内容刷新到终端
func (r *TermRenderer) End() {
	r.screen.Show()
}

// Cell 画布坐标对应的终端单元格
//
// 返回：
//   - x, y: 单元格坐标
//   - bool: 是否落在网格内
func (r *TermRenderer) Cell(px, py float64) (int, int, bool) {
	if r.cols == 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	col := int(px / r.cellW)
	row := int(py / r.cellH)
	if col >= r.cols || row >= r.rows {
		return 0, 0, false
	}
	return col + r.offX, row + r.offY, true
}

// ShipGlyph 返回最接近 angle 的方向字符（0 表示朝上，顺时针为正）
func ShipGlyph(angle float64) rune {
	sector := int(math.Round(angle / (math.Pi / 4)))
	sector = ((sector % 8) + 8) % 8
	return shipGlyphs[sector]
}

func (r *TermRenderer) drawStarField(s systems.Sprite) {
	r.background = termColor(s.Fill)
	fill := tcell.StyleDefault.Background(r.background)
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			r.screen.SetContent(x+r.offX, y+r.offY, ' ', nil, fill)
		}
	}
	for _, star := range s.Stars {
		r.put(star.X, star.Y, starGlyph, s.Color)
	}
}

func (r *TermRenderer) drawDisc(s systems.Sprite) {
	radius := s.Size / 2
	x0, y0, ok0 := r.Cell(s.Pos.X-radius, s.Pos.Y-radius)
	x1, y1, ok1 := r.Cell(s.Pos.X+radius, s.Pos.Y+radius)
	if !ok0 || !ok1 {
		r.put(s.Pos.X, s.Pos.Y, coreGlyph, s.Color)
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cx := (float64(x-r.offX) + 0.5) * r.cellW
			cy := (float64(y-r.offY) + 0.5) * r.cellH
			if math.Hypot(cx-s.Pos.X, cy-s.Pos.Y) <= radius+r.cellW/2 {
				r.screen.SetContent(x, y, coreGlyph, nil, r.style(s.Color))
			}
		}
	}
}

func (r *TermRenderer) drawText(s systems.Sprite) {
	x, y, ok := r.Cell(s.Pos.X, s.Pos.Y)
	if !ok {
		return
	}
	style := r.style(s.Color).Bold(true)
	right := r.offX + r.cols
	for _, ch := range s.Text {
		if x >= right {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *TermRenderer) put(px, py float64, ch rune, c color.NRGBA) {
	if x, y, ok := r.Cell(px, py); ok {
		r.screen.SetContent(x, y, ch, nil, r.style(c))
	}
}

func (r *TermRenderer) style(c color.NRGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(termColor(c)).Background(r.background)
}

func termColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
