package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.SwitchToNamed("", scene)
}

// SwitchToNamed 切换场景并记录名称（用于日志和调试显示）
func (sm *SceneManager) SwitchToNamed(name string, scene Scene) {
	sm.currentScene = scene
	sm.currentName = name
	if name != "" {
		log.Printf("[SceneManager] 切换到场景: %s", name)
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景名称，未命名时为空字符串
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// ShouldExit 当前场景实现 Exiter 且请求退出时返回 true
func (sm *SceneManager) ShouldExit() bool {
	exiter, ok := sm.currentScene.(Exiter)
	return ok && exiter.ShouldExit()
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
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
