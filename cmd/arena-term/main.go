// arena-term 在终端中运行 Core Defense
//
// 用法:
//
//	go run ./cmd/arena-term [-skip-tutorial] [-seed 42] [-verbose -log arena.log]
//
// 方向键或 WASD 移动，空格开始，R 重新开始，M 静音，Esc/q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/coredefense/pkg/config"
	"github.com/decker502/coredefense/pkg/ecs"
	"github.com/decker502/coredefense/pkg/game"
	"github.com/decker502/coredefense/pkg/systems"
	"github.com/decker502/coredefense/pkg/types"
	"github.com/gdamore/tcell/v2"
)

var (
	verbose      = flag.Bool("verbose", false, "Write logs to the -log file")
	logPath      = flag.String("log", "arena-term.log", "Log file used with -verbose")
	configPath   = flag.String("config", "data/arena.yaml", "Arena config file")
	rulesPath    = flag.String("rules", "data/spawn_rules.yaml", "Spawn rules file")
	seed         = flag.Int64("seed", 0, "Random seed (0 = time based)")
	fps          = flag.Int("fps", 60, "Frames per second")
	releaseMs    = flag.Int("release-ms", 150, "Treat a direction key as released after this many ms without a repeat")
	skipTutorial = flag.Bool("skip-tutorial", false, "Start a run immediately")
	mute         = flag.Bool("mute", false, "Disable audio output")
)

func main() {
	flag.Parse()

	closeLog := setupLogging()
	defer closeLog()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena-term: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging 终端被画面占用，日志只能写到文件
func setupLogging() func() {
	log.SetOutput(io.Discard)
	if !*verbose {
		return func() {}
	}
	f, err := os.Create(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-term: cannot open log file: %v\n", err)
		return func() {}
	}
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return func() { f.Close() }
}

func run() error {
	arenaConfig := config.LoadArenaConfigOrDefault(*configPath)
	rules := config.LoadSpawnRulesOrDefault(*rulesPath)
	settings := game.OpenSettingsManager(game.AppName)

	audio := NewBeepAudio(settings)
	if !*mute {
		if err := audio.Init(); err != nil {
			log.Printf("[arena-term] Audio disabled: %v", err)
		}
	}
	defer audio.Close()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	session := game.NewSession(ecs.NewEntityManager(), arenaConfig, rand.New(rand.NewSource(s)), audio)
	runtime := systems.NewArenaRuntime(session, systems.RuntimeOptions{
		Rules:    rules,
		Settings: settings,
		Applier:  audio,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()

	loop := &termLoop{
		screen:   screen,
		runtime:  runtime,
		renderer: NewTermRenderer(screen),
		keys:     NewTermKeys(time.Duration(*releaseMs) * time.Millisecond),
	}
	loop.run(time.Second/time.Duration(max(*fps, 1)), *skipTutorial || settings.GetSettings().SkipTutorial)

	session.Audio().Loop(game.LoopSong, false)
	session.Audio().Loop(game.LoopEngine, false)
	update, render := runtime.Stats()
	log.Printf("[arena-term] Exit: score %d, max update %.2fms, max render %.2fms", session.Score, update, render)
	return nil
}

// termLoop 终端主循环：所有游戏状态只在 run 的 goroutine 中访问
type termLoop struct {
	screen   tcell.Screen
	runtime  *systems.ArenaRuntime
	renderer *TermRenderer
	keys     *TermKeys
	events   []types.KeyEvent
}

func (l *termLoop) run(frame time.Duration, skipTutorial bool) {
	start := time.Now()
	l.runtime.Start(0, skipTutorial)

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !l.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			l.step(now, start)
		}
	}
}

// handleEvent 处理一个 tcell 事件，返回 false 表示退出
func (l *termLoop) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		l.events = l.keys.Press(l.events[:0], TermKeyCode(ev), now)
		l.dispatch()
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventFocus:
		if !ev.Focused {
			l.keys = NewTermKeys(l.keys.releaseAfter)
			l.runtime.ReleaseAllKeys()
		}
	}
	return true
}

// step 松开超时的按键、推进模拟并绘制一帧
func (l *termLoop) step(now, start time.Time) {
	l.events = l.keys.Expire(l.events[:0], now)
	l.dispatch()
	l.runtime.Advance(float64(now.Sub(start).Microseconds()) / 1000)
	l.runtime.Draw(l.renderer)
}

func (l *termLoop) dispatch() {
	for _, ev := range l.events {
		l.runtime.HandleKey(ev)
	}
}
