package behavior

import (
	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/entities"
	"github.com/decker502/coredefense/pkg/utils"
)

// handleBasicBehavior 每个瞄准间隔重新朝向中心
// 重新瞄准倒计时从 0 开始，第一次更新就会设置速度
func (s *BehaviorSystem) handleBasicBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	tuning := s.config.Enemies
	if countdown(&b.RetargetTimer, deltaMs, tuning.RetargetIntervalMs) {
		s.setVel(t, utils.VelTowardsCenter(t.Pos, s.config.Center(), tuning.BasicSpeed))
	}
}

// handleWaitingBehavior 休眠结束时一次性朝中心出发
//
// ActionTimer 是剩余休眠时间，先扣减再判断；休眠时间为 0 的实例在第一次更新时出发。
// 出发后速度不再更新。
func (s *BehaviorSystem) handleWaitingBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	if b.Activated {
		return
	}
	b.ActionTimer -= deltaMs
	if b.ActionTimer > 0 {
		return
	}
	b.Activated = true
	s.setVel(t, utils.VelTowardsCenter(t.Pos, s.config.Center(), s.config.Enemies.WaitingSpeed))
}

// handleScaredBehavior 玩家靠近时逃离中心，否则向中心靠近
// 每 tick 都重新判定，没有滞回
func (s *BehaviorSystem) handleScaredBehavior(t *components.TransformComponent) {
	tuning := s.config.Enemies
	speed := tuning.ScaredChaseSpeed

	if player := s.session.PlayerTransform(); player != nil {
		if player.Pos.Sub(t.Pos).MagnitudeSq() < tuning.ScaredRadius*tuning.ScaredRadius {
			speed = -tuning.ScaredFleeSpeed
		}
	}
	s.setVel(t, utils.VelTowardsCenter(t.Pos, s.config.Center(), speed))
}

// handleSwirlBehavior 每个瞄准间隔按“向心 + 切向”的合成速度螺旋靠近
func (s *BehaviorSystem) handleSwirlBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	tuning := s.config.Enemies
	if countdown(&b.RetargetTimer, deltaMs, tuning.RetargetIntervalMs) {
		s.setVel(t, utils.VelCenterBlend(t.Pos, s.config.Center(), tuning.SwirlTowardsSpeed, tuning.SwirlPerpSpeed))
	}
}

func (s *BehaviorSystem) setVel(t *components.TransformComponent, v utils.Vec) {
	entities.SetVelocity(t, v, s.config.Epsilon)
}
