package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/coredefense/pkg/game"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// sfxVoices 每个音效最多同时播放的数量
const sfxVoices = 3

// soundFiles 名称到 .wav 文件名（不含扩展名）的映射，未列出的与名称相同
var soundFiles = map[string]string{
	game.LoopEngine: "engineOn",
}

// AudioManager 基于 ebiten/audio 的 game.AudioCue 实现
//
// 职责：
//   - 按名称播放音效，每个音效最多 sfxVoices 个声部同时发声，声部全忙时丢弃
//   - 管理循环音轨（背景音乐、引擎声）的开关
//   - 音量与开关跟随 SettingsManager
//
// 音频数据优先从 soundDir 下的 <name>.wav 加载，文件缺失或解码失败时
// 使用 DefaultTones 合成，因此没有任何资源文件也能正常运行。
// context 为 nil 时所有操作都是空操作（降级模式）。
type AudioManager struct {
	context         *ebaudio.Context
	settingsManager *game.SettingsManager
	soundDir        string

	pcm          map[string][]byte
	soundPlayers map[string][]*ebaudio.Player
	loopPlayers  map[string]*ebaudio.Player
	loopWanted   map[string]bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文（可为 nil）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - soundDir: .wav 文件所在目录（可为空）
func NewAudioManager(ctx *ebaudio.Context, sm *game.SettingsManager, soundDir string) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundDir:        soundDir,
		pcm:             make(map[string][]byte),
		soundPlayers:    make(map[string][]*ebaudio.Player),
		loopPlayers:     make(map[string]*ebaudio.Player),
		loopWanted:      make(map[string]bool),
	}
}

// Play 播放一次音效
func (am *AudioManager) Play(name string) {
	if am.context == nil || !am.soundEnabled() {
		return
	}

	player := am.idleVoice(name)
	if player == nil {
		return
	}
	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
}

// Loop 开始或停止循环音轨
// 静音时只记录期望状态，取消静音后由 ApplySettings 恢复
func (am *AudioManager) Loop(name string, on bool) {
	am.loopWanted[name] = on
	am.applyLoop(name)
}

// ApplySettings 设置变化后（如 M 键静音）重新应用所有循环音轨的状态
func (am *AudioManager) ApplySettings() {
	for name := range am.loopWanted {
		am.applyLoop(name)
	}
}

// Preload 预先加载音频数据，避免首次播放时卡顿
func (am *AudioManager) Preload(names []string) {
	if am.context == nil {
		return
	}
	for _, name := range names {
		am.loadPCM(name)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(names))
}

func (am *AudioManager) applyLoop(name string) {
	if am.context == nil {
		return
	}

	enabled := am.soundEnabled()
	volume := am.getSoundVolume()
	if name == game.LoopSong {
		enabled = am.musicEnabled()
		volume = am.getMusicVolume()
	}

	if !am.loopWanted[name] || !enabled {
		if player, ok := am.loopPlayers[name]; ok {
			player.Pause()
		}
		return
	}

	player := am.getLoopPlayer(name)
	if player == nil {
		return
	}
	player.SetVolume(volume)
	if !player.IsPlaying() {
		player.Play()
	}
}

// idleVoice 返回一个空闲的声部，必要时新建
func (am *AudioManager) idleVoice(name string) *ebaudio.Player {
	voices := am.soundPlayers[name]
	for _, p := range voices {
		if !p.IsPlaying() {
			return p
		}
	}
	if len(voices) >= sfxVoices {
		return nil
	}

	data := am.loadPCM(name)
	if data == nil {
		return nil
	}
	player := am.context.NewPlayerFromBytes(data)
	am.soundPlayers[name] = append(voices, player)
	return player
}

func (am *AudioManager) getLoopPlayer(name string) *ebaudio.Player {
	if player, ok := am.loopPlayers[name]; ok {
		return player
	}

	data := am.loadPCM(name)
	if data == nil {
		return nil
	}
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create loop player %s: %v", name, err)
		return nil
	}
	am.loopPlayers[name] = player
	return player
}

// loadPCM 加载（或合成）音频数据并缓存
func (am *AudioManager) loadPCM(name string) []byte {
	if data, ok := am.pcm[name]; ok {
		return data
	}

	data, err := am.loadWav(name)
	if err != nil {
		spec, ok := game.DefaultTones[name]
		if !ok {
			log.Printf("[AudioManager] Warning: Sound not found: %s", name)
			am.pcm[name] = nil
			return nil
		}
		log.Printf("[AudioManager] Using synthesized %s (%v)", name, err)
		data = game.SynthesizePCM(spec, am.context.SampleRate())
	}

	am.pcm[name] = data
	return data
}

func (am *AudioManager) loadWav(name string) ([]byte, error) {
	if am.soundDir == "" {
		return nil, fmt.Errorf("no sound directory")
	}
	path := filepath.Join(am.soundDir, SoundFileName(name))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(am.context.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded %s: %w", path, err)
	}
	return data, nil
}

// SoundFileName 返回音效对应的 .wav 文件名
func SoundFileName(name string) string {
	if file, ok := soundFiles[name]; ok {
		return file + ".wav"
	}
	return name + ".wav"
}

func (am *AudioManager) soundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) musicEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().MusicEnabled
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7 // 默认值
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
