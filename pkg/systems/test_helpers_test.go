package systems

import (
	"math/rand"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
)

// recordingAudio 记录音效调用（测试用）
type recordingAudio struct {
	plays []string
	loops map[string]bool
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{loops: make(map[string]bool)}
}

func (a *recordingAudio) Play(name string)         { a.plays = append(a.plays, name) }
func (a *recordingAudio) Loop(name string, on bool) { a.loops[name] = on }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, p := range a.plays {
		if p == name {
			n++
		}
	}
	return n
}

// newTestSession 创建已开局的测试会话（固定随机种子）
func newTestSession() (*game.Session, *recordingAudio) {
	audio := newRecordingAudio()
	session := game.NewSession(ecs.NewEntityManager(), config.DefaultArenaConfig(), rand.New(rand.NewSource(1)), audio)
	session.Reset()
	audio.plays = nil
	return session, audio
}
