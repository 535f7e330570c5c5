// Package app 提供游戏应用的核心包装器
//
// 该包把配置加载、设置存储、音频与场景的组装从 main 包中提取出来，
// main.go 只负责解析命令行参数和设置窗口。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/coredefense/internal/audio"
	"github.com/decker502/coredefense/internal/input"
	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/render"
	"github.com/decker502/coredefense/pkg/scenes"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sampleRate 音频上下文采样率
const sampleRate = 44100

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场地配置文件（为空或加载失败时使用默认值）
	ConfigPath string
	// RulesPath 出怪规则文件（为空或加载失败时使用默认值）
	RulesPath string
	// Seed 随机种子，0 表示按当前时间
	Seed int64
	// SoundDir .wav 音效目录，缺失的音效使用合成音
	SoundDir string
	// SkipTutorial 跳过教程直接开局（覆盖已保存的设置）
	SkipTutorial bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *scenes.SceneManager
	settingsManager *game.SettingsManager
	arenaConfig     *config.ArenaConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 配置文件、设置存储与音频设备都允许缺失：缺失时记录日志并降级。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	arenaConfig := config.LoadArenaConfigOrDefault(cfg.ConfigPath)
	rules := config.LoadSpawnRulesOrDefault(cfg.RulesPath)

	settingsManager := game.OpenSettingsManager(game.AppName)
	if cfg.SkipTutorial {
		settingsManager.SetSkipTutorial(true)
		if err := settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	audioManager := audio.NewAudioManager(ebaudio.NewContext(sampleRate), settingsManager, cfg.SoundDir)
	audioManager.Preload(game.AllSounds())
	audioManager.ApplySettings()
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	session := game.NewSession(ecs.NewEntityManager(), arenaConfig, rand.New(rand.NewSource(seed)), audioManager)
	runtime := systems.NewArenaRuntime(session, systems.RuntimeOptions{
		Rules:    rules,
		Settings: settingsManager,
		Applier:  audioManager,
	})

	sceneManager := scenes.NewSceneManager()
	skip := settingsManager.GetSettings().SkipTutorial
	sceneManager.SwitchTo(scenes.NewArenaScene(runtime, input.NewKeyboard(), render.NewEbitenRenderer(), skip))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		arenaConfig:     arenaConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Exit()
		return ebiten.Termination
	}

	// 退出全屏后需要等待几帧窗口管理器才能接受新尺寸
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			size := a.WindowSize()
			ebiten.SetWindowSize(size, size)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	a.sceneManager.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时画布居中，两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 画布是正方形，窗口尺寸变化时由渲染器等比缩放并居中
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// WindowSize 窗口边长：屏幕短边乘以设置中的比例
func (a *App) WindowSize() int {
	w, h := ebiten.Monitor().Size()
	short := min(w, h)
	if short <= 0 {
		return a.arenaConfig.CanvasSize / 2
	}
	return int(float64(short) * a.settingsManager.GetSettings().WindowScale)
}

// Fullscreen 启动时是否全屏
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时通知场景收尾
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
