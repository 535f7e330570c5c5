package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// exitingScene 记录 OnExit 调用次数
type exitingScene struct {
	MockScene
	exits int
}

func (e *exitingScene) OnExit() { e.exits++ }

// TestSceneManagerUpdateAndDraw verifies that calls reach the current scene.
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no scene initially")
	}

	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || !mockScene.drawCalled {
		t.Error("Scene's Update and Draw should be called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %.3f", mockScene.deltaTime)
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &exitingScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
	if scene1.exits != 1 {
		t.Errorf("scene1 exits = %d, want 1", scene1.exits)
	}
}

// TestSceneManagerExit verifies the exit notification on shutdown.
func TestSceneManagerExit(t *testing.T) {
	sm := NewSceneManager()
	sm.Exit() // 没有场景时不应 panic

	scene := &exitingScene{}
	sm.SwitchTo(scene)
	sm.SwitchTo(scene) // 切换到同一场景不触发退出
	sm.Exit()

	if scene.exits != 1 {
		t.Errorf("exits = %d, want 1", scene.exits)
	}
}
