package main

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/decker502/coredefense/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// sampleRate 终端版的音频采样率
const sampleRate = beep.SampleRate(44100)

// sfxLimit 混音器中同时存在的一次性音效上限，超出时丢弃新音效
const sfxLimit = 16

// BeepAudio 基于 beep speaker 的 game.AudioCue 实现
//
// 所有音效在创建时合成到内存缓冲区；一次性音效直接加入混音器，
// 循环音轨用 beep.Ctrl 暂停或恢复。音量与开关跟随 SettingsManager。
// speaker 初始化失败时所有操作都是空操作。
type BeepAudio struct {
	settings *game.SettingsManager
	rate     beep.SampleRate
	ready    bool

	mixer      *beep.Mixer
	buffers    map[string]*beep.Buffer
	loops      map[string]*beep.Ctrl
	loopVols   map[string]*effects.Volume
	loopWanted map[string]bool

	// speaker 回调在自己的 goroutine 中读取混音器，修改前必须加锁
	lock   func()
	unlock func()
}

// NewBeepAudio 创建音频后端并合成所有音效
func NewBeepAudio(settings *game.SettingsManager) *BeepAudio {
	a := &BeepAudio{
		settings:   settings,
		rate:       sampleRate,
		mixer:      &beep.Mixer{},
		buffers:    make(map[string]*beep.Buffer),
		loops:      make(map[string]*beep.Ctrl),
		loopVols:   make(map[string]*effects.Volume),
		loopWanted: make(map[string]bool),
		lock:       speaker.Lock,
		unlock:     speaker.Unlock,
	}
	for _, name := range game.AllSounds() {
		if buf := a.synthesize(name); buf != nil {
			a.buffers[name] = buf
		}
	}
	return a
}

// Init 打开音频设备并开始播放混音器
func (a *BeepAudio) Init() error {
	if err := speaker.Init(a.rate, a.rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.ready = true
	log.Printf("[BeepAudio] Speaker ready at %d Hz", a.rate)
	return nil
}

// Close 停止所有声音
func (a *BeepAudio) Close() {
	if !a.ready {
		return
	}
	a.lock()
	a.mixer.Clear()
	a.unlock()
	speaker.Close()
	a.ready = false
}

// Play 播放一次音效
func (a *BeepAudio) Play(name string) {
	if !a.ready || !a.soundEnabled() {
		return
	}
	buf, ok := a.buffers[name]
	if !ok {
		return
	}

	a.lock()
	defer a.unlock()
	if a.mixer.Len() >= sfxLimit+len(a.loops) {
		return
	}
	a.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), a.soundVolume()))
}

// Loop 开始或停止循环音轨
func (a *BeepAudio) Loop(name string, on bool) {
	a.loopWanted[name] = on
	a.applyLoop(name)
}

// ApplySettings 静音切换后重新应用所有循环音轨
func (a *BeepAudio) ApplySettings() {
	for name := range a.loopWanted {
		a.applyLoop(name)
	}
}

func (a *BeepAudio) applyLoop(name string) {
	if !a.ready {
		return
	}

	enabled, volume := a.soundEnabled(), a.soundVolume()
	if name == game.LoopSong {
		enabled, volume = a.musicEnabled(), a.musicVolume()
	}

	a.lock()
	defer a.unlock()

	ctrl, ok := a.loops[name]
	if !a.loopWanted[name] || !enabled {
		if ok {
			ctrl.Paused = true
		}
		return
	}

	if !ok {
		buf, found := a.buffers[name]
		if !found {
			return
		}
		vol := withVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume)
		ctrl = &beep.Ctrl{Streamer: vol}
		a.loops[name] = ctrl
		a.loopVols[name] = vol
		a.mixer.Add(ctrl)
	}
	setVolume(a.loopVols[name], volume)
	ctrl.Paused = false
}

// synthesize 把 DefaultTones 中的音效合成到缓冲区
// 旋律由 SineTone 逐个音符拼接，其余音效解码 SynthesizePCM 的输出
func (a *BeepAudio) synthesize(name string) *beep.Buffer {
	spec, ok := game.DefaultTones[name]
	if !ok {
		return nil
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: a.rate, NumChannels: 2, Precision: 2})
	if len(spec.Notes) > 0 {
		notes := make([]beep.Streamer, 0, len(spec.Notes))
		for _, hz := range spec.Notes {
			sine, err := generators.SineTone(a.rate, hz)
			if err != nil {
				log.Printf("[BeepAudio] Skipping note %.1fHz in %s: %v", hz, name, err)
				continue
			}
			notes = append(notes, beep.Take(a.rate.N(time.Duration(spec.DurationMs)*time.Millisecond), sine))
		}
		buf.Append(withVolume(beep.Seq(notes...), spec.Volume))
		return buf
	}

	buf.Append(&pcmStreamer{data: game.SynthesizePCM(spec, int(a.rate))})
	return buf
}

func (a *BeepAudio) soundEnabled() bool {
	return a.settings == nil || a.settings.GetSettings().SoundEnabled
}

func (a *BeepAudio) musicEnabled() bool {
	return a.settings == nil || a.settings.GetSettings().MusicEnabled
}

func (a *BeepAudio) soundVolume() float64 {
	if a.settings == nil {
		return 0.8
	}
	return a.settings.GetSettings().SoundVolume
}

func (a *BeepAudio) musicVolume() float64 {
	if a.settings == nil {
		return 0.7
	}
	return a.settings.GetSettings().MusicVolume
}

// withVolume 以线性增益包装 streamer（0 为静音）
func withVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, gain)
	return v
}

func setVolume(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

// pcmStreamer 把 16 位小端双声道 PCM 转换为 beep 采样
type pcmStreamer struct {
	data []byte
	pos  int
}

func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.pos+4 > len(p.data) {
			return i, i > 0
		}
		l := int16(binary.LittleEndian.Uint16(p.data[p.pos:]))
		r := int16(binary.LittleEndian.Uint16(p.data[p.pos+2:]))
		samples[i][0] = float64(l) / math.MaxInt16
		samples[i][1] = float64(r) / math.MaxInt16
		p.pos += 4
	}
	return len(samples), true
}

func (p *pcmStreamer) Err() error { return nil }
