package main

import (
	"flag"
	"log"

	"github.com/decker502/coredefense/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	configPath   = flag.String("config", "data/arena.yaml", "Arena config file")
	rulesPath    = flag.String("rules", "data/spawn_rules.yaml", "Spawn rules file")
	seed         = flag.Int64("seed", 0, "Random seed (0 = time based)")
	soundDir     = flag.String("sounds", "assets/sounds", "Directory with .wav sound effects")
	skipTutorial = flag.Bool("skip-tutorial", false, "Start a run immediately and remember the choice")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		RulesPath:    *rulesPath,
		Seed:         *seed,
		SoundDir:     *soundDir,
		SkipTutorial: *skipTutorial,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	size := gameApp.WindowSize()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle("Core Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
