package scenes

import (
	"log"
	"time"

	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeySource 每帧提供按键事件
type KeySource interface {
	// Poll 追加本帧的按键事件；第二个返回值表示窗口刚失去焦点
	Poll(dst []types.KeyEvent) ([]types.KeyEvent, bool)
}

// FrameRenderer 能以 ebiten 图像为目标的渲染器
type FrameRenderer interface {
	systems.Renderer
	SetTarget(screen *ebiten.Image)
}

// ArenaScene 唯一的游戏场景：教程、对局与结束画面都在这里
//
// 模拟由挂钟驱动：每次 Update 把自启动以来的毫秒数交给调度器，
// 到期的 tick 拿到真实的时间差，而不是假定的 1/60 秒。
type ArenaScene struct {
	runtime  *systems.ArenaRuntime
	keys     KeySource
	renderer FrameRenderer

	start  time.Time
	now    func() time.Time
	events []types.KeyEvent
}

// NewArenaScene 创建场景并立即开始（教程或直接开局）
//
// 参数：
//   - runtime: 组装好的运行时
//   - keys: 按键来源
//   - renderer: 渲染器
//   - skipTutorial: 是否跳过教程
func NewArenaScene(runtime *systems.ArenaRuntime, keys KeySource, renderer FrameRenderer, skipTutorial bool) *ArenaScene {
	s := &ArenaScene{
		runtime:  runtime,
		keys:     keys,
		renderer: renderer,
		now:      time.Now,
	}
	s.start = s.now()
	runtime.Start(0, skipTutorial)
	return s
}

// Update 处理输入并推进模拟
// deltaTime 不参与模拟，tick 的时间差来自挂钟
func (s *ArenaScene) Update(deltaTime float64) {
	var lostFocus bool
	s.events, lostFocus = s.keys.Poll(s.events[:0])
	if lostFocus {
		s.runtime.ReleaseAllKeys()
	}
	for _, ev := range s.events {
		s.runtime.HandleKey(ev)
	}

	s.runtime.Advance(s.elapsedMs())
}

// Draw 渲染当前画面
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.renderer.SetTarget(screen)
	s.runtime.Draw(s.renderer)
}

// OnExit 关闭音轨并输出统计
func (s *ArenaScene) OnExit() {
	session := s.runtime.Session()
	session.Audio().Loop(game.LoopSong, false)
	session.Audio().Loop(game.LoopEngine, false)
	update, render := s.runtime.Stats()
	log.Printf("[ArenaScene] Exit: score %d, max update %.2fms, max render %.2fms", session.Score, update, render)
}

func (s *ArenaScene) elapsedMs() float64 {
	return float64(s.now().Sub(s.start).Microseconds()) / 1000
}
