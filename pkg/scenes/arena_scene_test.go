package scenes

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/decker502/coredefense/pkg/types"
)

// scriptedKeys 按帧返回预设的按键事件
type scriptedKeys struct {
	frames    [][]types.KeyEvent
	lostFocus map[int]bool
	frame     int
}

func (k *scriptedKeys) Poll(dst []types.KeyEvent) ([]types.KeyEvent, bool) {
	defer func() { k.frame++ }()
	lost := k.lostFocus[k.frame]
	if k.frame >= len(k.frames) {
		return dst, lost
	}
	return append(dst, k.frames[k.frame]...), lost
}

// fakeClock 每次调用前进固定毫秒数
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestArenaScene(keys KeySource) (*ArenaScene, *game.Session) {
	session := game.NewSession(ecs.NewEntityManager(), config.DefaultArenaConfig(), rand.New(rand.NewSource(5)), nil)
	runtime := systems.NewArenaRuntime(session, systems.RuntimeOptions{})
	scene := NewArenaScene(runtime, keys, nil, false)

	clock := &fakeClock{t: time.Unix(0, 0), step: 17 * time.Millisecond}
	scene.start = clock.t
	scene.now = clock.now
	return scene, session
}

func TestArenaSceneTutorialToActive(t *testing.T) {
	keys := &scriptedKeys{frames: [][]types.KeyEvent{
		{{Code: types.KeyArrowLeft, Down: true}},
		{},
		{{Code: types.KeySpace, Down: true}},
		{{Code: types.KeySpace, Down: false}},
	}}
	scene, session := newTestArenaScene(keys)

	scene.Update(1.0 / 60)
	if session.Phase != game.PhaseTutorial {
		t.Fatalf("phase = %v, want tutorial", session.Phase)
	}
	if session.PlayerTransform().Vel.X >= 0 {
		t.Error("player should move left in the tutorial")
	}

	for i := 0; i < 3; i++ {
		scene.Update(1.0 / 60)
	}
	if session.Phase != game.PhaseActive {
		t.Fatalf("phase = %v, want active", session.Phase)
	}
	if session.PlayerTransform().Vel.X >= 0 {
		t.Error("held key should still apply after the restart")
	}

	scene.Update(1.0 / 60)
	if len(session.EnemyList()) != 1 {
		t.Errorf("enemies = %d, want the first wave", len(session.EnemyList()))
	}
}

func TestArenaSceneReleasesKeysOnFocusLoss(t *testing.T) {
	keys := &scriptedKeys{
		frames:    [][]types.KeyEvent{{{Code: types.KeyArrowUp, Down: true}}},
		lostFocus: map[int]bool{1: true},
	}
	scene, session := newTestArenaScene(keys)

	scene.Update(1.0 / 60)
	if session.PlayerTransform().Vel.Y >= 0 {
		t.Fatal("player should move up")
	}
	scene.Update(1.0 / 60)
	if v := session.PlayerTransform().Vel; v.X != 0 || v.Y != 0 {
		t.Errorf("vel = %v, want stopped after focus loss", v)
	}
}
