// Package tui 在终端里运行双模态简历
//
// 与窗口版共用同一个 ModeController 和时间轴，只是把 ViewState 渲染成
// lipgloss 字符画面。界面由 16ms 的 tea.Tick 驱动。
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
	"github.com/decker502/neonswitch/pkg/view"
)

const (
	// frameInterval 帧间隔
	frameInterval = 16 * time.Millisecond
	// maxFrameDelta 单帧最多推进的时长，终端卡顿后不会一次跳过整段动画
	maxFrameDelta = 100 * time.Millisecond

	defaultWidth  = 100
	defaultHeight = 30
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model bubbletea 模型
type Model struct {
	cfg *config.ResumeConfig

	scheduler  *transition.Scheduler
	controller *transition.ModeController
	view       *view.ViewState
	styles     styles
	cards      []view.Card

	keys keyMap
	help help.Model

	width, height int
	lastTick      time.Time
	elapsed       time.Duration
	showDebug     bool
	quitting      bool
}

// New 创建终端模型并应用初始模式
func New(cfg *config.ResumeConfig) *Model {
	m := &Model{
		cfg:       cfg,
		scheduler: transition.NewScheduler(),
		view:      view.NewViewState(),
		styles:    newStyles(view.NewPalette(cfg)),
		cards:     view.BuildCards(cfg.NeonMode),
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	modes := func() config.AnimationModes { return m.cfg.Global.AnimationModes }
	m.controller = transition.NewModeController(transition.ParseMode(cfg.Global.InitialMode), modes, m.view, m.scheduler)
	return m
}

// Run 在备用屏幕中运行终端界面，直到用户退出或 ctx 取消
func Run(ctx context.Context, cfg *config.ResumeConfig) error {
	program := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// Controller 返回模式控制器
func (m *Model) Controller() *transition.ModeController {
	return m.controller
}

// Init 实现 tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.cfg.Global.PageTitle), tick())
}

// Update 实现 tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.controller.RequestToggle()
		case key.Matches(msg, m.keys.Back):
			// 返回只在 B面有效
			if m.controller.Mode() == transition.ModeNeon {
				m.controller.RequestToggle()
			}
		case key.Matches(msg, m.keys.Debug):
			m.showDebug = !m.showDebug
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		m.Step(min(max(dt, 0), maxFrameDelta))
		return m, tick()
	}
	return m, nil
}

// Step 推进时钟，补间与时间轴步骤按触发时间交替推进
func (m *Model) Step(dt time.Duration) {
	m.elapsed += dt
	fired := m.scheduler.Fired()
	m.view.Drive(m.scheduler, dt)
	if n := m.scheduler.Fired() - fired; n > 0 {
		log.Printf("[TUI] %d step(s) fired at %v", n, m.scheduler.Now())
	}
}
