package systems

import (
	"strconv"

	"github.com/decker502/coredefense/pkg/components"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
)

// ScoreTextSystem 让分数文字跟随会话分数
type ScoreTextSystem struct {
	entityManager *ecs.EntityManager
	session       *game.Session
}

// NewScoreTextSystem 创建分数文字系统
func NewScoreTextSystem(em *ecs.EntityManager, session *game.Session) *ScoreTextSystem {
	return &ScoreTextSystem{entityManager: em, session: session}
}

// Update 刷新分数文字
func (s *ScoreTextSystem) Update() {
	score := strconv.Itoa(s.session.Score)
	for _, id := range ecs.GetEntitiesWith2[*components.ScoreTextComponent, *components.TextComponent](s.entityManager) {
		text, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		text.Text = score
	}
}
