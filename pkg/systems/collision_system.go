package systems

import (
	"log"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/utils"
)

// Circle 圆形碰撞体在某一时刻的位置
type Circle struct {
	Pos    utils.Vec
	Radius float64
}

// HitboxesCollide 两个圆形碰撞体是否接触（相切也算）
//
// 判定为 |a - b|² ≤ (ra + rb)²，对参数顺序对称。
func HitboxesCollide(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Pos.Sub(b.Pos).MagnitudeSq() <= r*r
}

// CollisionSystem 在所有移动完成后处理碰撞
//
// 顺序：
//  1. 任一敌人碰到中心 → 游戏结束
//  2. 碰到玩家的敌人被消灭
//  3. 把玩家推出禁入区
//
// ProtoBasic 不是敌人，不参与前两步。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.ArenaConfig
	session       *game.Session
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.ArenaConfig, session *game.Session) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		session:       session,
	}
}

// Update 执行一次完整的碰撞处理
func (s *CollisionSystem) Update() {
	center, hasCenter := s.circleOf(s.session.CenterID)
	player, hasPlayer := s.circleOf(s.session.PlayerID)

	enemies := s.session.EnemyList()

	if hasCenter {
		for _, id := range enemies {
			enemy, ok := s.circleOf(id)
			if ok && HitboxesCollide(enemy, center) {
				if s.session.GameOver() {
					log.Printf("[CollisionSystem] Enemy %d reached the center", id)
				}
			}
		}
	}

	if hasPlayer {
		for _, id := range enemies {
			enemy, ok := s.circleOf(id)
			if ok && HitboxesCollide(enemy, player) {
				s.session.RemoveEnemy(id)
			}
		}
	}

	s.ContainPlayer()
}

// ContainPlayer 玩家进入禁入区时沿径向推回到禁入区边界
// 玩家恰好位于中心时推向正下方（+y）
func (s *CollisionSystem) ContainPlayer() {
	transform := s.session.PlayerTransform()
	if transform == nil {
		return
	}

	center := s.config.Center()
	inner := s.config.InnerRadius
	offset := transform.Pos.Sub(center)
	if offset.MagnitudeSq() >= inner*inner {
		return
	}

	dir := offset.Unit()
	if dir == utils.ZeroVec {
		dir = utils.V(0, 1)
	}
	transform.Pos = center.Add(dir.Scale(inner))
}

func (s *CollisionSystem) circleOf(id ecs.EntityID) (Circle, bool) {
	if !s.entityManager.IsAlive(id) {
		return Circle{}, false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return Circle{}, false
	}
	hitbox, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
	if !ok {
		return Circle{}, false
	}
	return Circle{Pos: transform.Pos, Radius: hitbox.Radius}, true
}
