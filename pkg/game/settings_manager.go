package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置（跨会话保存）
type GameSettings struct {
	// 音频设置
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关（M 键切换）

	// 显示设置
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
	WindowScale  float64 `yaml:"windowScale"`  // 窗口边长占屏幕短边的比例
	SkipTutorial bool    `yaml:"skipTutorial"` // 启动时跳过教程直接开局
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
		WindowScale:  0.9,
		SkipTutorial: false,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// AppName gdata 存储使用的应用名（桌面版与终端版共享设置）
const AppName = "coredefense"

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// OpenSettingsManager 打开 gdata 存储并加载设置
// 存储不可用时记录日志并退化为仅内存设置
func OpenSettingsManager(appName string) *SettingsManager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: storage unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	sm, _ := NewSettingsManager(gdataManager)
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		// 文件不存在，使用默认设置
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loadedSettings GameSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 设置文件可以手工编辑，越界的值在这里修正
	if loadedSettings.WindowScale <= 0 || loadedSettings.WindowScale > 1 {
		loadedSettings.WindowScale = DefaultSettings().WindowScale
	}
	loadedSettings.MusicVolume = clampVolume(loadedSettings.MusicVolume)
	loadedSettings.SoundVolume = clampVolume(loadedSettings.SoundVolume)
	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回：
//   - *GameSettings: 当前设置实例
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
//
// 参数：
//   - enabled: 是否启用全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleSound 切换音效与音乐的总开关并立即保存
//
// 音效或音乐任一开启时全部关闭，否则全部开启。
//
// 返回：
//   - bool: 切换后是否有声音
//   - error: 保存失败时返回错误（内存中的设置已经生效）
func (sm *SettingsManager) ToggleSound() (bool, error) {
	on := !(sm.settings.SoundEnabled || sm.settings.MusicEnabled)
	sm.settings.SoundEnabled = on
	sm.settings.MusicEnabled = on
	return on, sm.Save()
}

// SetSkipTutorial 设置启动时是否跳过教程
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSkipTutorial(skip bool) {
	sm.settings.SkipTutorial = skip
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

