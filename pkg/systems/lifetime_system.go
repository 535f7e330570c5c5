package systems

import (
	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 扣减剩余寿命，寿命小于 0 的实体标记删除
//
// 参数:
//   - deltaMs: 本 tick 经过的毫秒数
func (s *LifetimeSystem) Update(deltaMs float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Remaining -= deltaMs
		if lifetime.Remaining < 0 {
			lifetime.IsExpired = true
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
