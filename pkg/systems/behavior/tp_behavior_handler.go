package behavior

import (
	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/utils"
)

// handleTpBehavior 匀速靠近中心，定期瞬移一段“向心 + 切向”的距离
// 瞬移后重新瞄准中心并播放 greyGoo 音效
func (s *BehaviorSystem) handleTpBehavior(b *components.BehaviorComponent, t *components.TransformComponent, deltaMs float64) {
	tuning := s.config.Enemies
	if !countdown(&b.ActionTimer, deltaMs, tuning.TpIntervalMs) {
		return
	}
	center := s.config.Center()
	t.Pos = t.Pos.Add(utils.VelCenterBlend(t.Pos, center, tuning.TpJumpTowards, tuning.TpJumpPerp))
	s.setVel(t, utils.VelTowardsCenter(t.Pos, center, tuning.TpSpeed))
	s.session.Audio().Play(game.SoundGreyGoo)
}
