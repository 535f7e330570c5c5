package entities

import (
	"math/rand"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/utils"
)

// 文字行的默认高度（画布像素）
const (
	ScoreTextY    = 50.0
	GameOverTextY = 100.0
)

// TutorialLines 教程界面的说明文字，依次绘制在 50/100/150/200 的高度
var TutorialLines = []string{
	"Use arrow keys to move.",
	"Don't let any enemies get to the center.",
	"Touch an enemy to kill it.",
	"Press space to begin.",
}

// GameOverText 游戏结束提示
const GameOverText = "Game over! Press R to play again."

// NewPlayerEntity 创建玩家实体
// 玩家出生在中心正下方、禁入区外 StartOffset 处，初始静止
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.ArenaConfig) ecs.EntityID {
	id := em.CreateEntity()
	pos := cfg.Center().Add(utils.V(0, cfg.InnerRadius+cfg.Player.StartOffset))

	em.AddComponent(id, &components.TransformComponent{Pos: pos})
	em.AddComponent(id, &components.HitboxComponent{Radius: config.RadiusForSize(cfg.Sprites.Player)})
	em.AddComponent(id, &components.TrailComponent{
		TimeToParticle: cfg.Particles.TrailIntervalMs,
		ParticleSpeed:  cfg.Particles.TrailSpeed,
	})
	em.AddComponent(id, &components.ArenaSpinComponent{})
	em.AddComponent(id, &components.PlayerComponent{})
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerGameplay,
		Kind:  components.SpriteShip,
		Name:  "player",
		Size:  cfg.Sprites.Player,
		Color: PlayerColor,
	})
	return id
}

// NewCenterEntity 创建中心实体（静止，随场地旋转）
func NewCenterEntity(em *ecs.EntityManager, cfg *config.ArenaConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{Pos: cfg.Center()})
	em.AddComponent(id, &components.HitboxComponent{Radius: config.RadiusForSize(cfg.Sprites.Center)})
	em.AddComponent(id, &components.TrailComponent{
		TimeToParticle: cfg.Particles.TrailIntervalMs,
		ParticleSpeed:  cfg.Particles.TrailSpeed,
	})
	em.AddComponent(id, &components.ArenaSpinComponent{})
	em.AddComponent(id, &components.CenterComponent{})
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerGameplay,
		Kind:  components.SpriteCore,
		Name:  "center",
		Size:  cfg.Sprites.Center,
		Color: CenterColor,
	})
	return id
}

// NewBackgroundEntity 创建星空背景
//
// 星星均匀分布在边长为 √2·canvas 的正方形内（相对中心），
// 旋转任意角度后仍能铺满画布。
func NewBackgroundEntity(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand) ecs.EntityID {
	id := em.CreateEntity()

	genRad := config.SpriteSizeToRadius * float64(cfg.CanvasSize)
	stars := make([]utils.Vec, cfg.StarCount)
	for i := range stars {
		stars[i] = utils.V(
			utils.RandFloat64(rng)*2*genRad-genRad,
			utils.RandFloat64(rng)*2*genRad-genRad,
		)
	}

	em.AddComponent(id, &components.BackgroundComponent{Stars: stars, Fill: BackgroundFill})
	em.AddComponent(id, &components.RenderComponent{
		Layer: components.LayerBackground,
		Kind:  components.SpriteStarField,
		Name:  "background",
		Size:  2,
		Color: StarColor,
	})
	return id
}

// NewTextEntity 创建一行文字
func NewTextEntity(em *ecs.EntityManager, text string, y float64, layer components.Layer) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TextComponent{Text: text, Y: y})
	em.AddComponent(id, &components.RenderComponent{
		Layer: layer,
		Kind:  components.SpriteText,
		Name:  "text",
		Color: TextColor,
	})
	return id
}

// NewScoreTextEntity 创建分数显示（初始为 "0"）
func NewScoreTextEntity(em *ecs.EntityManager) ecs.EntityID {
	id := NewTextEntity(em, "0", ScoreTextY, components.LayerHUD)
	em.AddComponent(id, &components.ScoreTextComponent{})
	return id
}

// NewTutorialTextEntities 创建教程说明文字
func NewTutorialTextEntities(em *ecs.EntityManager) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(TutorialLines))
	for i, line := range TutorialLines {
		ids = append(ids, NewTextEntity(em, line, float64(i+1)*50, components.LayerHUD))
	}
	return ids
}
