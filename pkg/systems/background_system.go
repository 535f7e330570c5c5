package systems

import (
	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/utils"
)

// BackgroundSystem 让星空随场地一起旋转
type BackgroundSystem struct {
	entityManager *ecs.EntityManager
}

// NewBackgroundSystem 创建背景系统
func NewBackgroundSystem(em *ecs.EntityManager) *BackgroundSystem {
	return &BackgroundSystem{entityManager: em}
}

// Update 把每颗星星（相对中心的坐标）转过本 tick 的角度
func (s *BackgroundSystem) Update(d utils.Delta) {
	for _, id := range ecs.GetEntitiesWith1[*components.BackgroundComponent](s.entityManager) {
		bg, _ := ecs.GetComponent[*components.BackgroundComponent](s.entityManager, id)
		for i, star := range bg.Stars {
			bg.Stars[i] = d.Rotate(star)
		}
	}
}
