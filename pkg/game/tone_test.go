package game

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSynthesizePCMLength(t *testing.T) {
	tests := []struct {
		name string
		spec ToneSpec
		want int
	}{
		{"100ms at 44.1kHz", ToneSpec{StartHz: 440, EndHz: 440, DurationMs: 100, Volume: 1}, 4410 * 4},
		{"zero duration", ToneSpec{StartHz: 440, DurationMs: 0, Volume: 1}, 0},
		{"melody", ToneSpec{DurationMs: 10, Volume: 1, Notes: []float64{440, 880, 220}}, 3 * 441 * 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SynthesizePCM(tt.spec, 44100)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSynthesizePCMStereoAndBounded(t *testing.T) {
	data := SynthesizePCM(ToneSpec{StartHz: 300, EndHz: 600, DurationMs: 50, Volume: 0.5, Square: true}, 48000)

	limit := 0.5*math.MaxInt16 + 1
	for i := 0; i+3 < len(data); i += 4 {
		left := int16(binary.LittleEndian.Uint16(data[i:]))
		right := int16(binary.LittleEndian.Uint16(data[i+2:]))
		if left != right {
			t.Fatalf("sample %d: left %d != right %d", i/4, left, right)
		}
		if math.Abs(float64(left)) > limit {
			t.Fatalf("sample %d exceeds volume: %d", i/4, left)
		}
	}
}

func TestSynthesizePCMFadeOut(t *testing.T) {
	data := SynthesizePCM(ToneSpec{StartHz: 1000, EndHz: 1000, DurationMs: 100, Volume: 1, Square: true, FadeOut: true}, 10000)

	first := math.Abs(float64(int16(binary.LittleEndian.Uint16(data[4:]))))
	last := math.Abs(float64(int16(binary.LittleEndian.Uint16(data[len(data)-4:]))))
	if last >= first {
		t.Errorf("fade out: last %v should be quieter than first %v", last, first)
	}
}

func TestDefaultTonesCoverAllCues(t *testing.T) {
	for _, name := range []string{
		SoundEnemySpawn, SoundExplosion, SoundGameBegin, SoundGameOver,
		SoundWiz, SoundGreyGoo, LoopEngine, LoopSong,
	} {
		spec, ok := DefaultTones[name]
		if !ok {
			t.Errorf("missing tone for %s", name)
			continue
		}
		if len(SynthesizePCM(spec, 44100)) == 0 {
			t.Errorf("tone %s synthesizes no samples", name)
		}
	}
}
