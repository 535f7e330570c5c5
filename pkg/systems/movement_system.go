package systems

import (
	"math/rand"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/entities"
	"github.com/decker502/coredefense/pkg/utils"
)

// MovementSystem 移动所有带碰撞体的实体（玩家、中心、敌人、ProtoBasic）
//
// 每个实体每 tick：
//  1. pos += vel·ms
//  2. 随场地旋转的实体绕中心转过本 tick 的角度
//  3. 尾迹倒计时到期且实体在移动时，从尾部发射一个粒子
//
// 粒子没有碰撞体，由 ParticleSystem 单独移动。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.ArenaConfig
	rng           *rand.Rand
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, cfg *config.ArenaConfig, rng *rand.Rand) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// Update 按本 tick 的时间步长移动实体
func (s *MovementSystem) Update(d utils.Delta) {
	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.HitboxComponent](s.entityManager) {
		ecs.Guard("MovementSystem", id, func() {
			s.move(id, d)
		})
	}
}

func (s *MovementSystem) move(id ecs.EntityID, d utils.Delta) {
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	hitbox, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)

	transform.Pos = transform.Pos.Add(transform.Vel.Scale(d.Ms))
	if ecs.HasComponent[*components.ArenaSpinComponent](s.entityManager, id) {
		transform.Pos = d.RotateAround(transform.Pos, s.config.Center())
	}

	trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id)
	if !ok {
		return
	}
	trail.TimeToParticle -= d.Ms
	if trail.TimeToParticle > 0 {
		return
	}
	// 重置为完整间隔，不补偿超出的时间
	trail.TimeToParticle = s.config.Particles.TrailIntervalMs

	if transform.Vel.MagnitudeSq() <= s.config.Epsilon {
		return
	}
	back := transform.Vel.Scale(-1).Unit()
	entities.NewParticleEntity(s.entityManager, s.config, s.rng,
		transform.Pos.Add(back.Scale(hitbox.Radius)),
		back.Scale(trail.ParticleSpeed))
}
