package scenes

import (
	"log"
	"time"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/game"
	"github.com/decker502/neonswitch/pkg/transition"
	"github.com/decker502/neonswitch/pkg/view"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	_ Scene       = (*NeonSwitchScene)(nil)
	_ game.Exiter = (*NeonSwitchScene)(nil)
)

// NeonSwitchScene 双模态简历场景
//
// A面显示简历图和切换按钮，B面显示霓虹卡片网格。点击切换按钮（或按空格）
// 播放转场时间轴进入 B面；B面点击返回按钮（或按 Esc）回到 A面。
//
// 操作：
//   - 鼠标/触摸：点击切换按钮或返回按钮
//   - Space/Enter：切换
//   - Esc/Backspace：B面返回
//   - D：显示调试信息
//   - Q：退出
type NeonSwitchScene struct {
	cfg       *config.ResumeConfig
	resources *game.ResourceManager
	text      *textRenderer

	scheduler  *transition.Scheduler
	controller *transition.ModeController
	view       *view.ViewState
	palette    view.Palette

	cards     []view.Card
	cardRects []Rect

	elapsed   time.Duration
	showDebug bool
	exit      bool
}

// NewNeonSwitchScene 创建场景并应用初始模式
//
// 参数：
//   - cfg: 已加载的配置
//   - resources: 图片/字体资源管理器
//
// 返回：
//   - *NeonSwitchScene: 已处于初始模式稳定状态的场景
func NewNeonSwitchScene(cfg *config.ResumeConfig, resources *game.ResourceManager) *NeonSwitchScene {
	s := &NeonSwitchScene{
		cfg:       cfg,
		resources: resources,
		text:      newTextRenderer(resources, cfg.Global.FontPath),
		scheduler: transition.NewScheduler(),
		view:      view.NewViewState(),
		palette:   view.NewPalette(cfg),
		cards:     view.BuildCards(cfg.NeonMode),
	}
	s.cardRects = LayoutCards(s.cards)

	// 每次前进转场都重新读取动画模式
	modes := func() config.AnimationModes { return s.cfg.Global.AnimationModes }
	s.controller = transition.NewModeController(transition.ParseMode(cfg.Global.InitialMode), modes, s.view, s.scheduler)
	s.controller.SetModeChangedCallback(func(m transition.Mode) {
		log.Printf("[NeonSwitchScene] Mode changed: %s", m)
	})

	s.preloadImages()
	return s
}

// preloadImages 预加载配置中的图片，缺失的图片只在这里记录一次警告
func (s *NeonSwitchScene) preloadImages() {
	g := s.cfg.Global
	for _, path := range []string{
		g.LogoPath,
		g.KunaiPath,
		g.TransitionLogos.Logo1,
		g.TransitionLogos.Logo2,
		s.cfg.NormalMode.ResumeImagePath,
		s.cfg.NeonMode.Profile.Avatar,
	} {
		s.resources.ImageOrNil(path)
	}
}

// Controller 返回模式控制器
func (s *NeonSwitchScene) Controller() *transition.ModeController {
	return s.controller
}

// ViewState 返回视觉状态
func (s *NeonSwitchScene) ViewState() *view.ViewState {
	return s.view
}

// ShouldExit 实现 game.Exiter
func (s *NeonSwitchScene) ShouldExit() bool {
	return s.exit
}

// Update 处理输入并推进时间轴与补间
func (s *NeonSwitchScene) Update(deltaTime float64) {
	s.handleInput()
	s.Step(time.Duration(deltaTime * float64(time.Second)))
}

// Step 推进时钟，补间与时间轴步骤按触发时间交替推进
func (s *NeonSwitchScene) Step(dt time.Duration) {
	s.elapsed += dt
	s.view.Drive(s.scheduler, dt)
}

func (s *NeonSwitchScene) handleInput() {
	if anyKeyJustPressed(ebiten.KeyQ) {
		s.exit = true
		return
	}
	if anyKeyJustPressed(ebiten.KeyD) {
		s.showDebug = !s.showDebug
	}

	if anyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter) {
		s.controller.RequestToggle()
		return
	}
	if anyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace) && s.controller.Mode() == transition.ModeNeon {
		s.controller.RequestToggle()
		return
	}

	if clicked, x, y := justClicked(); clicked {
		s.HandleClick(x, y)
	}
}

// HandleClick 处理一次点击，返回是否命中了可见的按钮
//
// 只有当前可见区域上的按钮响应点击；转场中的点击由控制器忽略。
func (s *NeonSwitchScene) HandleClick(x, y float64) bool {
	switch {
	case s.view.RegionVisible(transition.RegionNormal) && SwitchButtonRect().Contains(x, y):
		s.controller.RequestToggle()
		return true
	case s.view.RegionVisible(transition.RegionNeon) && BackButtonRect().Contains(x, y):
		s.controller.RequestToggle()
		return true
	}
	return false
}
