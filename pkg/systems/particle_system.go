package systems

import (
	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/utils"
)

// ParticleSystem 移动并旋转装饰粒子
// 粒子不随场地旋转；寿命由 LifetimeSystem 扣减
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 更新所有粒子的位置与角度
func (s *ParticleSystem) Update(d utils.Delta) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.TransformComponent](s.entityManager) {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Pos = transform.Pos.Add(particle.Vel.Scale(d.Ms))
		transform.Angle += particle.AngVel * d.Ms
	}
}
