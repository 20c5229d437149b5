// Package app 提供窗口应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/game"
	"github.com/decker502/neonswitch/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 配置文件路径，为空时使用内置 profile
	ConfigPath string
	// Profile 内置 profile 名称（如 "doloris"），ConfigPath 非空时忽略
	Profile string
}

// App 是窗口应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	resumeConfig             *config.ResumeConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化内置配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resumeConfig, err := config.Load(cfg.ConfigPath, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	for _, warning := range config.ValidateResumeConfig(resumeConfig) {
		log.Printf("[Config] Warning: %s", warning)
	}

	// 相对路径的图片以配置文件所在目录为基准；内置 profile 以工作目录为基准
	baseDir := ""
	if cfg.ConfigPath != "" {
		baseDir = filepath.Dir(cfg.ConfigPath)
	}
	resourceManager := game.NewResourceManager(baseDir)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchToNamed("neon-switch", scenes.NewNeonSwitchScene(resumeConfig, resourceManager))

	log.Printf("[App] Started: title=%q initialMode=%s", resumeConfig.Global.PageTitle, resumeConfig.Global.InitialMode)

	return &App{
		sceneManager: sceneManager,
		resumeConfig: resumeConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))

	// 移动端由系统管理生命周期，忽略场景的退出请求
	if a.sceneManager.ShouldExit() && !IsMobile() {
		log.Printf("[App] Exit requested by scene")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 全屏时左右两边为黑色
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// WindowTitle 返回窗口标题（global.pageTitle）
func (a *App) WindowTitle() string {
	return a.resumeConfig.Global.PageTitle
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
