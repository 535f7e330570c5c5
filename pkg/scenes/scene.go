package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景在程序退出前收到通知
//
// 实现此接口的场景会在窗口关闭时被调用 OnExit()，用于停止音轨、
// 保存设置、输出统计信息等收尾工作。
type Exiter interface {
	OnExit()
}
