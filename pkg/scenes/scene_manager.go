package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is notified through Exiter when it implements it.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if exiter, ok := sm.currentScene.(Exiter); ok {
			exiter.OnExit()
		}
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Exit 通知当前场景程序即将退出
func (sm *SceneManager) Exit() {
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.OnExit()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
