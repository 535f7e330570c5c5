package components

import "image/color"

// Layer 绘制层级，数值越小越先绘制（越靠下）
type Layer int

const (
	LayerBackground Layer = iota // 背景与星空
	LayerParticles               // 尾迹与爆炸粒子
	LayerHUD                     // 分数与教程文字
	LayerGameplay                // 中心、玩家、敌人
	LayerOverlay                 // 游戏结束提示
)

// SpriteKind 决定渲染器如何绘制实体
type SpriteKind int

const (
	SpriteShip      SpriteKind = iota // 带朝向的飞船（玩家与敌人）
	SpriteCore                        // 中心
	SpriteParticle                    // 旋转的正方形粒子
	SpriteStarField                   // 星空背景
	SpriteText                        // 文本
)

// RenderComponent 标记实体需要绘制
//
// 拥有该组件的存活实体构成对象列表。
// 绘制顺序：先按 Layer，同层按实体创建顺序。
type RenderComponent struct {
	Layer Layer
	Kind  SpriteKind
	Name  string      // 精灵名称（如 "player"、"basicEnemy"），供渲染器选择外观
	Size  float64     // 精灵边长（像素）
	Color color.NRGBA // 主色
}
