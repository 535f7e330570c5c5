package game

import (
	"encoding/binary"
	"math"
)

// ToneSpec 合成音效的参数
//
// 单音：频率在 DurationMs 内从 StartHz 线性滑到 EndHz。
// 旋律：Notes 非空时依次演奏，每个音符持续 DurationMs。
type ToneSpec struct {
	StartHz    float64
	EndHz      float64
	DurationMs float64
	Volume     float64   // 振幅 0.0 ~ 1.0
	Square     bool      // 方波（否则正弦波）
	FadeOut    bool      // 线性淡出（循环音轨不淡出以便无缝衔接）
	Notes      []float64 // 旋律音符频率
}

// DefaultTones 没有 .wav 文件时使用的合成音效
var DefaultTones = map[string]ToneSpec{
	SoundEnemySpawn: {StartHz: 440, EndHz: 660, DurationMs: 120, Volume: 0.35, FadeOut: true},
	SoundExplosion:  {StartHz: 220, EndHz: 40, DurationMs: 260, Volume: 0.45, Square: true, FadeOut: true},
	SoundGameBegin:  {StartHz: 330, EndHz: 990, DurationMs: 450, Volume: 0.4, FadeOut: true},
	SoundGameOver:   {StartHz: 440, EndHz: 110, DurationMs: 800, Volume: 0.45, FadeOut: true},
	SoundWiz:        {StartHz: 880, EndHz: 1320, DurationMs: 220, Volume: 0.3, FadeOut: true},
	SoundGreyGoo:    {StartHz: 160, EndHz: 320, DurationMs: 160, Volume: 0.35, Square: true, FadeOut: true},
	LoopEngine:      {StartHz: 70, EndHz: 70, DurationMs: 500, Volume: 0.12, Square: true},
	LoopSong: {
		DurationMs: 220,
		Volume:     0.18,
		Notes:      []float64{261.63, 311.13, 392.00, 466.16, 392.00, 311.13, 349.23, 415.30},
	},
}

// SynthesizePCM 生成 16 位小端、双声道的 PCM 数据
//
// 参数：
//   - spec: 音效参数
//   - sampleRate: 采样率（与音频上下文一致）
//
// 返回：
//   - []byte: 可直接交给音频播放器的 PCM 数据
func SynthesizePCM(spec ToneSpec, sampleRate int) []byte {
	if len(spec.Notes) > 0 {
		var out []byte
		for _, hz := range spec.Notes {
			note := spec
			note.Notes = nil
			note.StartHz, note.EndHz = hz, hz
			note.FadeOut = true
			out = append(out, SynthesizePCM(note, sampleRate)...)
		}
		return out
	}

	samples := int(float64(sampleRate) * spec.DurationMs / 1000)
	if samples <= 0 {
		return nil
	}

	out := make([]byte, samples*4)
	phase := 0.0
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		hz := spec.StartHz + (spec.EndHz-spec.StartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		v := math.Sin(phase)
		if spec.Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		amp := spec.Volume
		if spec.FadeOut {
			amp *= 1 - progress
		}

		s := int16(v * amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
