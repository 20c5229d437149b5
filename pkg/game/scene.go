package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the résumé switcher, a verification stage).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景通过它请求结束程序
//
// 实现此接口的场景在 ShouldExit() 返回 true 后，
// App.Update 返回 ebiten.Termination，窗口正常关闭。
type Exiter interface {
	ShouldExit() bool
}
