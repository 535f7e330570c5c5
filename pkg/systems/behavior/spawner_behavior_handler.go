package behavior

import (
	"log"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/decker502/coredefense/pkg/utils"
)

// handleWizBehavior 静止不动，定期在自身位置召唤一个 ProtoBasic
// ProtoBasic 飞向出生圆环上的随机点
func (s *BehaviorSystem) handleWizBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	if !countdown(&b.ActionTimer, deltaMs, s.config.Enemies.WizSpawnIntervalMs) {
		return
	}
	target := s.config.Center().Add(utils.RandomInRadius(s.config.OuterRadius, s.session.Rand()))
	s.session.SpawnProtoBasic(t.Pos, target)
	s.session.Audio().Play(game.SoundWiz)
}

// handleGreyGooBehavior 缓慢靠近中心，并定期复制自己
//
// 每次复制先把 SpawnsLeft 减一，克隆体携带减一后的次数，
// 因此以 N 次创建的 GreyGoo 最多产生 2^N - 1 个后代。
func (s *BehaviorSystem) handleGreyGooBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	tuning := s.config.Enemies
	if countdown(&b.RetargetTimer, deltaMs, tuning.RetargetIntervalMs) {
		s.setVel(t, utils.VelTowardsCenter(t.Pos, s.config.Center(), tuning.GreyGooSpeed))
	}

	if b.SpawnsLeft <= 0 {
		return
	}
	if !countdown(&b.ActionTimer, deltaMs, tuning.GreyGooSpawnIntervalMs) {
		return
	}
	b.SpawnsLeft--
	pos := t.Pos.Add(utils.RandomInRadius(tuning.GreyGooCloneRadius, s.session.Rand()))
	s.session.SpawnGreyGooClone(pos, b.SpawnsLeft)
}

// handleProtoBasicBehavior 飞向降落点，到达后变成 Basic
func (s *BehaviorSystem) handleProtoBasicBehavior(id ecs.EntityID, b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	tuning := s.config.Enemies
	if countdown(&b.RetargetTimer, deltaMs, tuning.RetargetIntervalMs) {
		s.setVel(t, b.Target.Sub(t.Pos).Unit().Scale(tuning.ProtoSpeed))
	}

	if t.Pos.Sub(b.Target).MagnitudeSq() >= tuning.ProtoArriveRadius*tuning.ProtoArriveRadius {
		return
	}
	if s.session.SpawnEnemyAt(types.EnemyBasic, b.Target) == 0 {
		log.Printf("[BehaviorSystem] ProtoBasic %d failed to land", id)
	}
	s.session.RemoveEnemy(id)
}
