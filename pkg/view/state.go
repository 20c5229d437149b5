package view

import (
	"slices"
	"time"

	"github.com/decker502/neonswitch/pkg/transition"
)

// ViewState 渲染层的视觉状态
//
// 非并发安全，与 ModeController 在同一个循环中使用。
type ViewState struct {
	regionVisible map[transition.Region]bool
	regionOpacity map[transition.Region]*tween

	overlayVisible bool
	overlayOpacity tween

	// 标记开启后经过的时间，用于驱动标记内部的动画（缩放、飞入、下落）
	states map[transition.VisualState]time.Duration

	mode transition.Mode
}

var _ transition.ViewPresenter = (*ViewState)(nil)

// NewViewState 创建空状态：两个区域都隐藏，遮罩隐藏
//
// 通常紧接着由 NewModeController 设置初始模式的稳定状态。
func NewViewState() *ViewState {
	return &ViewState{
		regionVisible: map[transition.Region]bool{
			transition.RegionNormal: false,
			transition.RegionNeon:   false,
		},
		regionOpacity: map[transition.Region]*tween{
			transition.RegionNormal: {},
			transition.RegionNeon:   {},
		},
		states: make(map[transition.VisualState]time.Duration),
	}
}

// Update 推进所有补间与标记计时
func (v *ViewState) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for _, tw := range v.regionOpacity {
		tw.update(dt)
	}
	v.overlayOpacity.update(dt)
	for s := range v.states {
		v.states[s] += dt
	}
}

// Drive 同时推进补间与调度器
//
// 按到期步骤切分 dt：先把补间推进到步骤的触发时刻，再触发步骤，
// 这样帧中间开始的过渡从步骤的触发时间起算，而不是从帧末起算。
// 必须在宿主循环中调用，不能在步骤回调中调用。
func (v *ViewState) Drive(s *transition.Scheduler, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	for {
		step := dt
		if due, ok := s.NextDue(); ok && due-s.Now() < step {
			step = max(due-s.Now(), 0)
		}
		v.Update(step)
		n := s.Advance(step)
		dt -= step
		if dt <= 0 {
			return
		}
		// 重入调用时调度器不会前进，剩余时长只推进补间
		if step == 0 && n == 0 {
			v.Update(dt)
			return
		}
	}
}

// SetOverlayOpacity 实现 transition.ViewPresenter
func (v *ViewState) SetOverlayOpacity(opacity float64, fade time.Duration) {
	v.overlayOpacity.set(clamp01(opacity), fade)
}

// SetOverlayVisible 实现 transition.ViewPresenter
func (v *ViewState) SetOverlayVisible(visible bool) {
	v.overlayVisible = visible
}

// SetRegionVisible 实现 transition.ViewPresenter
func (v *ViewState) SetRegionVisible(region transition.Region, visible bool) {
	v.regionVisible[region] = visible
}

// SetRegionOpacity 实现 transition.ViewPresenter
func (v *ViewState) SetRegionOpacity(region transition.Region, opacity float64, fade time.Duration) {
	tw, ok := v.regionOpacity[region]
	if !ok {
		tw = &tween{}
		v.regionOpacity[region] = tw
	}
	tw.set(clamp01(opacity), fade)
}

// SetVisualState 实现 transition.ViewPresenter
//
// 重复开启已开启的标记不会重置其计时。
func (v *ViewState) SetVisualState(state transition.VisualState, active bool) {
	if !active {
		delete(v.states, state)
		return
	}
	if _, ok := v.states[state]; !ok {
		v.states[state] = 0
	}
}

// SetModeClass 实现 transition.ViewPresenter
func (v *ViewState) SetModeClass(mode transition.Mode) {
	v.mode = mode
}

// RegionVisible 区域是否显示
func (v *ViewState) RegionVisible(region transition.Region) bool {
	return v.regionVisible[region]
}

// RegionOpacity 区域当前的（补间中的）透明度；隐藏的区域返回 0
func (v *ViewState) RegionOpacity(region transition.Region) float64 {
	if !v.regionVisible[region] {
		return 0
	}
	tw, ok := v.regionOpacity[region]
	if !ok {
		return 0
	}
	return tw.value()
}

// OverlayVisible 遮罩是否显示
func (v *ViewState) OverlayVisible() bool {
	return v.overlayVisible
}

// OverlayOpacity 遮罩当前透明度；隐藏时返回 0
func (v *ViewState) OverlayOpacity() float64 {
	if !v.overlayVisible {
		return 0
	}
	return v.overlayOpacity.value()
}

// StateActive 标记是否开启
func (v *ViewState) StateActive(state transition.VisualState) bool {
	_, ok := v.states[state]
	return ok
}

// StateAge 返回标记开启后经过的时间
func (v *ViewState) StateAge(state transition.VisualState) (time.Duration, bool) {
	age, ok := v.states[state]
	return age, ok
}

// ActiveStates 按名称排序返回所有开启的标记
func (v *ViewState) ActiveStates() []transition.VisualState {
	out := make([]transition.VisualState, 0, len(v.states))
	for s := range v.states {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// ModeClass 返回当前的模式样式
func (v *ViewState) ModeClass() transition.Mode {
	return v.mode
}

// Tweening 任一透明度补间尚未结束时返回 true
func (v *ViewState) Tweening() bool {
	if !v.overlayOpacity.done() {
		return true
	}
	for _, tw := range v.regionOpacity {
		if !tw.done() {
			return true
		}
	}
	return false
}
