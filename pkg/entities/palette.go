package entities

import (
	"image/color"

	"github.com/decker502/coredefense/pkg/types"
	"golang.org/x/image/colornames"
)

// 画面配色
var (
	BackgroundFill = color.NRGBA{R: 0x2a, G: 0x32, B: 0x4b, A: 0xff}
	StarColor      = nrgba(colornames.White)
	TextColor      = color.NRGBA{R: 0xe5, G: 0x8f, B: 0x65, A: 0xff}
	PlayerColor    = nrgba(colornames.Deepskyblue)
	CenterColor    = nrgba(colornames.Gold)

	// ParticleColors 粒子颜色（半透明红与橙），创建时随机选择
	ParticleColors = []color.NRGBA{
		{R: 0xff, G: 0x00, B: 0x00, A: 0x55},
		{R: 0xff, G: 0x88, B: 0x00, A: 0x55},
	}
)

var enemyColors = map[types.EnemyType]color.NRGBA{
	types.EnemyBasic:      nrgba(colornames.Tomato),
	types.EnemyWaiting:    nrgba(colornames.Orange),
	types.EnemyWiz:        nrgba(colornames.Mediumorchid),
	types.EnemyGreyGoo:    nrgba(colornames.Darkgray),
	types.EnemyScared:     nrgba(colornames.Yellowgreen),
	types.EnemySwirl:      nrgba(colornames.Hotpink),
	types.EnemyTp:         nrgba(colornames.Turquoise),
	types.EnemyProtoBasic: nrgba(colornames.Lightpink),
}

// EnemyColor 返回敌人原型的主色
func EnemyColor(t types.EnemyType) color.NRGBA {
	if c, ok := enemyColors[t]; ok {
		return c
	}
	return nrgba(colornames.Red)
}

// EnemySpriteName 返回敌人原型的精灵名称（如 "basicEnemy"）
func EnemySpriteName(t types.EnemyType) string {
	return t.String() + "Enemy"
}

// colornames 中的颜色均不透明，直接转换即可
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
