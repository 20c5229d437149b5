package transition

import (
	"fmt"
	"strings"
	"time"
)

// 记录的调用方法名
const (
	CallOverlayOpacity = "SetOverlayOpacity"
	CallOverlayVisible = "SetOverlayVisible"
	CallRegionVisible  = "SetRegionVisible"
	CallRegionOpacity  = "SetRegionOpacity"
	CallVisualState    = "SetVisualState"
	CallModeClass      = "SetModeClass"
)

// PresenterCall 一次 ViewPresenter 调用
type PresenterCall struct {
	At     time.Duration // 调用时的调度器时间
	Method string
	Target string // 区域名 / 标记名 / 模式名，遮罩调用为 "overlay"
	Value  string
	Fade   time.Duration
}

// String 格式化为单行
func (c PresenterCall) String() string {
	s := fmt.Sprintf("%6dms  %s(%s, %s)", c.At.Milliseconds(), c.Method, c.Target, c.Value)
	if c.Fade > 0 {
		s += fmt.Sprintf(" fade=%v", c.Fade)
	}
	return s
}

// RecordingPresenter 记录所有调用的 ViewPresenter
//
// 可选地把调用转发给 Next，用于在真实渲染的同时留下调用轨迹。
// 测试和 neonctl timeline 都使用它。
type RecordingPresenter struct {
	Next ViewPresenter

	clock Clock
	calls []PresenterCall
}

// NewRecordingPresenter 创建记录器，clock 通常就是 Scheduler
func NewRecordingPresenter(clock Clock) *RecordingPresenter {
	return &RecordingPresenter{clock: clock}
}

// Calls 返回全部记录
func (r *RecordingPresenter) Calls() []PresenterCall {
	return r.calls
}

// Reset 清空记录
func (r *RecordingPresenter) Reset() {
	r.calls = r.calls[:0]
}

// Find 返回匹配 method/target/value 的所有调用时间，空字符串表示不限
func (r *RecordingPresenter) Find(method, target, value string) []time.Duration {
	var out []time.Duration
	for _, c := range r.calls {
		if method != "" && c.Method != method {
			continue
		}
		if target != "" && c.Target != target {
			continue
		}
		if value != "" && c.Value != value {
			continue
		}
		out = append(out, c.At)
	}
	return out
}

// FirstAt 返回第一次匹配调用的时间
func (r *RecordingPresenter) FirstAt(method, target, value string) (time.Duration, bool) {
	found := r.Find(method, target, value)
	if len(found) == 0 {
		return 0, false
	}
	return found[0], true
}

// String 每行一条调用
func (r *RecordingPresenter) String() string {
	var b strings.Builder
	for _, c := range r.calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *RecordingPresenter) record(method, target, value string, fade time.Duration) {
	var at time.Duration
	if r.clock != nil {
		at = r.clock.Now()
	}
	r.calls = append(r.calls, PresenterCall{At: at, Method: method, Target: target, Value: value, Fade: fade})
}

// SetOverlayOpacity 实现 ViewPresenter
func (r *RecordingPresenter) SetOverlayOpacity(v float64, fade time.Duration) {
	r.record(CallOverlayOpacity, "overlay", formatOpacity(v), fade)
	if r.Next != nil {
		r.Next.SetOverlayOpacity(v, fade)
	}
}

// SetOverlayVisible 实现 ViewPresenter
func (r *RecordingPresenter) SetOverlayVisible(visible bool) {
	r.record(CallOverlayVisible, "overlay", fmt.Sprint(visible), 0)
	if r.Next != nil {
		r.Next.SetOverlayVisible(visible)
	}
}

// SetRegionVisible 实现 ViewPresenter
func (r *RecordingPresenter) SetRegionVisible(region Region, visible bool) {
	r.record(CallRegionVisible, region.String(), fmt.Sprint(visible), 0)
	if r.Next != nil {
		r.Next.SetRegionVisible(region, visible)
	}
}

// SetRegionOpacity 实现 ViewPresenter
func (r *RecordingPresenter) SetRegionOpacity(region Region, v float64, fade time.Duration) {
	r.record(CallRegionOpacity, region.String(), formatOpacity(v), fade)
	if r.Next != nil {
		r.Next.SetRegionOpacity(region, v, fade)
	}
}

// SetVisualState 实现 ViewPresenter
func (r *RecordingPresenter) SetVisualState(state VisualState, active bool) {
	r.record(CallVisualState, string(state), fmt.Sprint(active), 0)
	if r.Next != nil {
		r.Next.SetVisualState(state, active)
	}
}

// SetModeClass 实现 ViewPresenter
func (r *RecordingPresenter) SetModeClass(mode Mode) {
	r.record(CallModeClass, "body", "mode-"+mode.String(), 0)
	if r.Next != nil {
		r.Next.SetModeClass(mode)
	}
}

func formatOpacity(v float64) string {
	return fmt.Sprintf("%g", v)
}
