package transition

import (
	"log"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/google/uuid"
)

// ModesSource 返回当前的动画模式，每次前进转场开始时读取一次
type ModesSource func() config.AnimationModes

// StaticModes 返回固定动画模式的 ModesSource
func StaticModes(modes config.AnimationModes) ModesSource {
	return func() config.AnimationModes { return modes }
}

// ModeController 模式切换控制器
//
// 持有当前模式与转场锁（animating），是客户端唯一需要调用的入口。
// 模式只在时间轴的提交步骤中改变；转场锁从 RequestToggle 接受请求起保持为 true，
// 直到目标模式被提交。
//
// 非并发安全：必须与驱动 Scheduler 的循环在同一个 goroutine 中使用。
type ModeController struct {
	mode      Mode
	animating bool

	modes     ModesSource
	presenter ViewPresenter
	scheduler *Scheduler

	transitionID string
	committed    int

	onModeChanged func(Mode)
}

// NewModeController 创建控制器并立即把界面设置为初始模式的稳定状态（无动画）
//
// 参数：
//   - initial: 初始模式（global.initialMode）
//   - modes: 动画模式来源，为 nil 时使用默认 pop + fade
//   - presenter: 视觉状态接口
//   - scheduler: 时间轴执行器
func NewModeController(initial Mode, modes ModesSource, presenter ViewPresenter, scheduler *Scheduler) *ModeController {
	if modes == nil {
		modes = StaticModes(config.DefaultAnimationModes())
	}

	c := &ModeController{
		mode:      initial,
		modes:     modes,
		presenter: presenter,
		scheduler: scheduler,
	}
	c.applySteadyState(initial)

	log.Printf("[ModeController] Initialized in %s mode", initial)
	return c
}

// SetModeChangedCallback 设置模式提交后的回调（每次完成的转场调用一次）
func (c *ModeController) SetModeChangedCallback(callback func(Mode)) {
	c.onModeChanged = callback
}

// Mode 返回当前模式
func (c *ModeController) Mode() Mode {
	return c.mode
}

// IsAnimating 转场进行中（转场锁被持有）时返回 true
func (c *ModeController) IsAnimating() bool {
	return c.animating
}

// CurrentTransitionID 返回进行中转场的 ID，空闲时返回空字符串
func (c *ModeController) CurrentTransitionID() string {
	if !c.animating {
		return ""
	}
	return c.transitionID
}

// CommittedTransitions 返回已完成提交的转场次数
func (c *ModeController) CommittedTransitions() int {
	return c.committed
}

// RequestToggle 请求切换到另一种模式
//
// 转场进行中时调用是空操作（防止连续点击）。否则持有转场锁并：
//   - 当前为 normal: 读取动画模式 → 计算时长表 → 排入前进时间轴
//   - 当前为 neon: 排入固定的返回时间轴
//
// 时间轴第一步（偏移 0）在本调用内同步触发。
//
// 返回：
//   - bool: 是否开始了新的转场
func (c *ModeController) RequestToggle() bool {
	if c.animating {
		log.Printf("[ModeController] Toggle ignored: transition %s in flight", c.transitionID)
		return false
	}

	c.animating = true
	c.transitionID = uuid.NewString()

	var tl Timeline
	if c.mode == ModeNormal {
		modes := c.modes().Normalize()
		durations := ResolveDurations(modes)
		tl = BuildForwardTimeline(durations, modes, c.presenter, func() { c.commit(ModeNeon) })
		log.Printf("[ModeController] Transition %s: normal → neon (logo=%s, kunai=%s, total=%v)",
			c.transitionID, modes.Logo, modes.Kunai, durations.Total())
	} else {
		tl = BuildReverseTimeline(c.presenter, func() { c.commit(ModeNormal) })
		log.Printf("[ModeController] Transition %s: neon → normal", c.transitionID)
	}

	c.scheduler.Schedule(tl)
	c.scheduler.Advance(0)
	return true
}

// commit 时间轴的提交步骤：更新模式并释放转场锁
func (c *ModeController) commit(to Mode) {
	c.mode = to
	c.animating = false
	c.committed++

	log.Printf("[ModeController] Transition %s committed: mode=%s", c.transitionID, to)

	if c.onModeChanged != nil {
		c.onModeChanged(to)
	}
}

// applySteadyState 直接设置某模式的稳定视觉状态，不经过时间轴
func (c *ModeController) applySteadyState(mode Mode) {
	p := c.presenter
	shown := RegionFor(mode)
	hidden := RegionFor(mode.Opposite())

	p.SetModeClass(mode)
	p.SetRegionVisible(hidden, false)
	p.SetRegionOpacity(hidden, 0, 0)
	p.SetRegionVisible(shown, true)
	p.SetRegionOpacity(shown, 1, 0)
	p.SetVisualState(StateActiveChrome, mode == ModeNeon)

	for _, s := range overlayStates {
		p.SetVisualState(s, false)
	}
	p.SetOverlayVisible(false)
	p.SetOverlayOpacity(0, 0)
}
