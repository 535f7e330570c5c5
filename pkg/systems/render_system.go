package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/utils"
)

// TextX 文字行左边缘的画布坐标
const TextX = 10.0

// Sprite 一个待绘制对象在某一时刻的快照
//
// 快照与实体数据不共享内存，渲染器可以在模拟继续推进时安全持有。
// 坐标均为逻辑画布坐标（CanvasSize × CanvasSize）。
type Sprite struct {
	ID    ecs.EntityID
	Kind  components.SpriteKind
	Layer components.Layer
	Name  string
	Pos   utils.Vec // 中心点；文字为左下基线
	Angle float64   // 朝向（弧度，0 表示朝上）
	Size  float64
	Color color.NRGBA

	Text  string      // SpriteText
	Stars []utils.Vec // SpriteStarField：星星的绝对坐标
	Fill  color.NRGBA // SpriteStarField：底色
}

// Renderer 绘制后端（ebiten 窗口或终端）
//
// 每次渲染：Begin，然后按绘制顺序逐个 DrawSprite，最后 End。
// DrawSprite 返回的错误只影响当前对象。
type Renderer interface {
	Begin(width, height int)
	DrawSprite(s Sprite) error
	End()
}

// RenderSystem 把会话的对象列表转换为快照并交给渲染器
//
// 渲染不会修改实体；单个对象绘制失败（错误或 panic）会被记录，
// 不影响其余对象。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
	config        *config.ArenaConfig

	failures int
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, session *game.Session, cfg *config.ArenaConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		session:       session,
		config:        cfg,
	}
}

// Snapshot 按绘制顺序生成所有对象的快照
func (s *RenderSystem) Snapshot() []Sprite {
	ids := s.session.ObjectList()
	sprites := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		if sprite, ok := s.snapshotOf(id); ok {
			sprites = append(sprites, sprite)
		}
	}
	return sprites
}

// Draw 渲染一帧
//
// 返回：
//   - int: 绘制失败的对象数
func (s *RenderSystem) Draw(r Renderer) int {
	sprites := s.Snapshot()
	failed := 0

	r.Begin(s.config.CanvasSize, s.config.CanvasSize)
	for _, sprite := range sprites {
		if err := drawIsolated(r, sprite); err != nil {
			failed++
			s.failures++
			if s.failures%LogOutputFrameInterval == 1 {
				log.Printf("[RenderSystem] Failed to draw %s (entity %d): %v", sprite.Name, sprite.ID, err)
			}
		}
	}
	r.End()
	return failed
}

func drawIsolated(r Renderer, sprite Sprite) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return r.DrawSprite(sprite)
}

func (s *RenderSystem) snapshotOf(id ecs.EntityID) (Sprite, bool) {
	render, ok := ecs.GetComponent[*components.RenderComponent](s.entityManager, id)
	if !ok {
		return Sprite{}, false
	}

	sprite := Sprite{
		ID:    id,
		Kind:  render.Kind,
		Layer: render.Layer,
		Name:  render.Name,
		Size:  render.Size,
		Color: render.Color,
	}

	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		sprite.Pos = transform.Pos
		sprite.Angle = transform.Angle
	}

	switch render.Kind {
	case components.SpriteText:
		text, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		if !ok {
			return Sprite{}, false
		}
		sprite.Text = text.Text
		sprite.Pos = utils.V(TextX, text.Y)
	case components.SpriteStarField:
		bg, ok := ecs.GetComponent[*components.BackgroundComponent](s.entityManager, id)
		if !ok {
			return Sprite{}, false
		}
		center := s.config.Center()
		sprite.Pos = center
		sprite.Fill = bg.Fill
		sprite.Stars = make([]utils.Vec, len(bg.Stars))
		for i, star := range bg.Stars {
			sprite.Stars[i] = star.Add(center)
		}
	}
	return sprite, true
}
