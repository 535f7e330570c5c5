package audio

import (
	"testing"

	"github.com/decker502/coredefense/pkg/game"
)

// TestAudioManagerWithoutContext 测试没有音频设备时的降级模式
func TestAudioManagerWithoutContext(t *testing.T) {
	sm, _ := game.NewSettingsManager(nil)
	am := NewAudioManager(nil, sm, "")

	am.Preload([]string{game.SoundExplosion})
	am.Play(game.SoundExplosion)
	am.Loop(game.LoopSong, true)
	am.ApplySettings()
	am.Loop(game.LoopSong, false)

	if len(am.soundPlayers) != 0 || len(am.loopPlayers) != 0 {
		t.Error("no players should be created without an audio context")
	}
	if am.loopWanted[game.LoopSong] {
		t.Error("song loop should be recorded as stopped")
	}
}

func TestAudioManagerRecordsLoopState(t *testing.T) {
	am := NewAudioManager(nil, nil, "")
	am.Loop(game.LoopEngine, true)
	if !am.loopWanted[game.LoopEngine] {
		t.Error("engine loop should be wanted")
	}
	am.Loop(game.LoopEngine, false)
	if am.loopWanted[game.LoopEngine] {
		t.Error("engine loop should be released")
	}
}

func TestSoundFileName(t *testing.T) {
	tests := map[string]string{
		game.LoopEngine:     "engineOn.wav",
		game.LoopSong:       "song.wav",
		game.SoundExplosion: "explosion.wav",
		game.SoundGameOver:  "gameover.wav",
	}
	for name, want := range tests {
		if got := SoundFileName(name); got != want {
			t.Errorf("SoundFileName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestAudioManagerImplementsAudioCue(t *testing.T) {
	var _ game.AudioCue = NewAudioManager(nil, nil, "")
	var _ game.AudioCue = game.NopAudio{}
}
