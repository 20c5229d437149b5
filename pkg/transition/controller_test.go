package transition

import (
	"reflect"
	"testing"
	"time"

	"github.com/decker502/neonswitch/pkg/config"
)

// fakeView 记录最终视觉状态（忽略过渡过程）
type fakeView struct {
	visible        map[Region]bool
	opacity        map[Region]float64
	overlayVisible bool
	overlayOpacity float64
	states         map[VisualState]bool
	modeClass      Mode
}

func newFakeView() *fakeView {
	return &fakeView{
		visible: make(map[Region]bool),
		opacity: make(map[Region]float64),
		states:  make(map[VisualState]bool),
	}
}

func (f *fakeView) SetOverlayOpacity(v float64, _ time.Duration) { f.overlayOpacity = v }
func (f *fakeView) SetOverlayVisible(visible bool)               { f.overlayVisible = visible }
func (f *fakeView) SetRegionVisible(r Region, visible bool)      { f.visible[r] = visible }
func (f *fakeView) SetRegionOpacity(r Region, v float64, _ time.Duration) {
	f.opacity[r] = v
}
func (f *fakeView) SetVisualState(s VisualState, active bool) { f.states[s] = active }
func (f *fakeView) SetModeClass(m Mode)                       { f.modeClass = m }

func (f *fakeView) activeStates() []VisualState {
	var out []VisualState
	for s, on := range f.states {
		if on {
			out = append(out, s)
		}
	}
	return out
}

// assertSteady 检查某模式的稳定状态：无残留标记，遮罩隐藏
func assertSteady(t *testing.T, f *fakeView, mode Mode) {
	t.Helper()

	shown, hidden := RegionFor(mode), RegionFor(mode.Opposite())
	if !f.visible[shown] || f.opacity[shown] != 1 {
		t.Errorf("%s: expected visible and opaque, got visible=%v opacity=%v", shown, f.visible[shown], f.opacity[shown])
	}
	if f.visible[hidden] {
		t.Errorf("%s: expected hidden", hidden)
	}
	if f.overlayVisible || f.overlayOpacity != 0 {
		t.Errorf("overlay: expected hidden, got visible=%v opacity=%v", f.overlayVisible, f.overlayOpacity)
	}
	if f.modeClass != mode {
		t.Errorf("mode class = %s, want %s", f.modeClass, mode)
	}

	active := f.activeStates()
	if mode == ModeNeon {
		if !reflect.DeepEqual(active, []VisualState{StateActiveChrome}) {
			t.Errorf("neon steady state: active states = %v, want [neon-active]", active)
		}
	} else if len(active) != 0 {
		t.Errorf("normal steady state: unexpected active states %v", active)
	}
}

func newTestController(initial Mode, modes config.AnimationModes) (*ModeController, *Scheduler, *RecordingPresenter, *fakeView) {
	s := NewScheduler()
	view := newFakeView()
	rec := NewRecordingPresenter(s)
	rec.Next = view
	c := NewModeController(initial, StaticModes(modes), rec, s)
	rec.Reset()
	return c, s, rec, view
}

// TestModeController_InitialState 测试初始稳定状态
func TestModeController_InitialState(t *testing.T) {
	for _, mode := range []Mode{ModeNormal, ModeNeon} {
		t.Run(mode.String(), func(t *testing.T) {
			c, s, _, view := newTestController(mode, config.DefaultAnimationModes())

			if c.Mode() != mode {
				t.Errorf("Mode() = %s, want %s", c.Mode(), mode)
			}
			if c.IsAnimating() {
				t.Error("Expected guard to be clear at start")
			}
			if !s.Idle() {
				t.Error("Expected no scheduled steps at start")
			}
			assertSteady(t, view, mode)
		})
	}
}

// TestModeController_GuardIdempotence 测试转场中重复请求无效
func TestModeController_GuardIdempotence(t *testing.T) {
	c, s, rec, _ := newTestController(ModeNormal, config.DefaultAnimationModes())

	if !c.RequestToggle() {
		t.Fatal("first RequestToggle should start a transition")
	}
	pending := s.Pending()
	calls := len(rec.Calls())
	id := c.CurrentTransitionID()

	if c.RequestToggle() {
		t.Error("second RequestToggle should be ignored")
	}
	if s.Pending() != pending || len(rec.Calls()) != calls {
		t.Error("ignored RequestToggle must have no observable effect")
	}
	if c.CurrentTransitionID() != id {
		t.Error("transition id changed on ignored request")
	}

	// 转场中途也被忽略
	s.Advance(2 * time.Second)
	if c.RequestToggle() {
		t.Error("RequestToggle during transition should be ignored")
	}

	s.RunUntilIdle()
	if c.CommittedTransitions() != 1 {
		t.Errorf("Expected exactly 1 committed transition, got %d", c.CommittedTransitions())
	}
	if c.Mode() != ModeNeon {
		t.Errorf("Mode() = %s, want neon", c.Mode())
	}
}

// TestModeController_VariantCoverage 测试四种组合都能结束在 neon
func TestModeController_VariantCoverage(t *testing.T) {
	for _, logo := range config.LogoVariants() {
		for _, kunai := range config.KunaiVariants() {
			modes := config.AnimationModes{Logo: logo, Kunai: kunai}
			t.Run(string(logo)+"+"+string(kunai), func(t *testing.T) {
				c, s, rec, view := newTestController(ModeNormal, modes)

				c.RequestToggle()
				s.RunUntilIdle()

				if c.Mode() != ModeNeon {
					t.Errorf("Mode() = %s, want neon", c.Mode())
				}
				if c.IsAnimating() {
					t.Error("guard should be clear after timeline")
				}
				if s.Now() != ResolveDurations(modes).Total() {
					t.Errorf("timeline ended at %v, want %v", s.Now(), ResolveDurations(modes).Total())
				}
				assertSteady(t, view, ModeNeon)

				flashes := rec.Find(CallVisualState, string(StateBackgroundFlash), "true")
				if kunai == config.KunaiDrop && len(flashes) != 1 {
					t.Errorf("drop: expected 1 background flash, got %d", len(flashes))
				}
				if kunai != config.KunaiDrop && len(flashes) != 0 {
					t.Errorf("%s: expected no background flash, got %d", kunai, len(flashes))
				}
			})
		}
	}
}

// TestModeController_PopFadeScenario 测试 pop+fade 的绝对时间点
func TestModeController_PopFadeScenario(t *testing.T) {
	c, s, rec, _ := newTestController(ModeNormal, config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiFade})

	c.RequestToggle()

	// 第一步在请求内同步执行
	if at, ok := rec.FirstAt(CallOverlayVisible, "overlay", "true"); !ok || at != 0 {
		t.Errorf("overlay shown at %v (ok=%v), want 0", at, ok)
	}

	s.Advance(4799 * ms)
	if c.Mode() != ModeNormal || !c.IsAnimating() {
		t.Errorf("before reveal: mode=%s animating=%v", c.Mode(), c.IsAnimating())
	}
	s.Advance(1 * ms)
	if c.Mode() != ModeNeon || c.IsAnimating() {
		t.Errorf("at reveal: mode=%s animating=%v", c.Mode(), c.IsAnimating())
	}
	s.RunUntilIdle()

	checks := []struct {
		name                  string
		method, target, value string
		want                  time.Duration
	}{
		{"隐藏 A面", CallRegionVisible, "normalView", "false", 500 * ms},
		{"Logo 1", CallVisualState, string(StateLogoStep1), "true", 1300 * ms},
		{"Logo 2", CallVisualState, string(StateLogoStep2), "true", 2300 * ms},
		{"合并", CallVisualState, string(StateMerge), "true", 3300 * ms},
		{"准备 B面", CallModeClass, "body", "mode-neon", 4300 * ms},
		{"点亮 B面", CallVisualState, string(StateActiveChrome), "true", 4800 * ms},
		{"清理遮罩", CallOverlayVisible, "overlay", "false", 5500 * ms},
	}
	for _, ck := range checks {
		at, ok := rec.FirstAt(ck.method, ck.target, ck.value)
		if !ok || at != ck.want {
			t.Errorf("%s: at %v (ok=%v), want %v", ck.name, at, ok, ck.want)
		}
	}

	if len(rec.Find(CallVisualState, string(StateBackgroundFlash), "true")) != 0 {
		t.Error("fade variant must not flash")
	}
	if len(rec.Find(CallVisualState, string(StateDrop), "true")) != 0 {
		t.Error("fade variant must not drop")
	}
}

// TestModeController_MorphDropScenario 测试 morph+drop 的绝对时间点
func TestModeController_MorphDropScenario(t *testing.T) {
	c, s, rec, _ := newTestController(ModeNormal, config.AnimationModes{Logo: config.LogoMorph, Kunai: config.KunaiDrop})

	c.RequestToggle()
	s.RunUntilIdle()

	checks := []struct {
		name                  string
		method, target, value string
		want                  time.Duration
	}{
		{"Logo 1", CallVisualState, string(StateLogoStep1), "true", 1000 * ms},
		{"morph 标记", CallVisualState, string(StateLogoMorph), "true", 1000 * ms},
		{"Logo 2", CallVisualState, string(StateLogoStep2), "true", 1750 * ms},
		{"合并", CallVisualState, string(StateMerge), "true", 2550 * ms},
		{"下落", CallVisualState, string(StateDrop), "true", 3550 * ms},
		{"背景闪烁", CallVisualState, string(StateBackgroundFlash), "true", 3750 * ms},
		{"准备 B面", CallModeClass, "body", "mode-neon", 4150 * ms},
		{"点亮 B面", CallVisualState, string(StateActiveChrome), "true", 4650 * ms},
		{"清理遮罩", CallOverlayVisible, "overlay", "false", 5350 * ms},
	}
	for _, ck := range checks {
		at, ok := rec.FirstAt(ck.method, ck.target, ck.value)
		if !ok || at != ck.want {
			t.Errorf("%s: at %v (ok=%v), want %v", ck.name, at, ok, ck.want)
		}
	}
	if c.Mode() != ModeNeon {
		t.Errorf("Mode() = %s, want neon", c.Mode())
	}
}

// TestModeController_Determinism 测试同一配置的调用序列完全一致
func TestModeController_Determinism(t *testing.T) {
	modes := config.AnimationModes{Logo: config.LogoMorph, Kunai: config.KunaiDrop}

	run := func() []PresenterCall {
		c, s, rec, _ := newTestController(ModeNormal, modes)
		c.RequestToggle()
		s.RunUntilIdle()
		return rec.Calls()
	}

	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Error("forward timeline produced different presenter calls on two runs")
	}
}

// TestModeController_RoundTrip 测试 normal → neon → normal 恢复原状态
func TestModeController_RoundTrip(t *testing.T) {
	c, s, _, view := newTestController(ModeNormal, config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiDrop})

	c.RequestToggle()
	s.RunUntilIdle()
	assertSteady(t, view, ModeNeon)

	if !c.RequestToggle() {
		t.Fatal("reverse RequestToggle should be accepted")
	}
	if !c.IsAnimating() {
		t.Error("guard should be held during reverse transition")
	}

	start := s.Now()
	s.RunUntilIdle()

	if s.Now()-start != ViewFadeDuration {
		t.Errorf("reverse timeline took %v, want %v", s.Now()-start, ViewFadeDuration)
	}
	if c.Mode() != ModeNormal || c.IsAnimating() {
		t.Errorf("after round trip: mode=%s animating=%v", c.Mode(), c.IsAnimating())
	}
	assertSteady(t, view, ModeNormal)
}

// TestModeController_ReverseIgnoresModes 测试返回转场不读取动画模式
func TestModeController_ReverseIgnoresModes(t *testing.T) {
	s := NewScheduler()
	reads := 0
	source := func() config.AnimationModes {
		reads++
		return config.DefaultAnimationModes()
	}
	c := NewModeController(ModeNeon, source, newFakeView(), s)

	c.RequestToggle()
	s.RunUntilIdle()
	if reads != 0 {
		t.Errorf("reverse transition read animation modes %d times", reads)
	}

	c.RequestToggle()
	s.RunUntilIdle()
	if reads != 1 {
		t.Errorf("forward transition should read animation modes once, got %d", reads)
	}
}

// TestModeController_ModesReadPerTransition 测试每次前进转场重新读取动画模式
func TestModeController_ModesReadPerTransition(t *testing.T) {
	s := NewScheduler()
	modes := config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiFade}
	c := NewModeController(ModeNormal, func() config.AnimationModes { return modes }, newFakeView(), s)

	c.RequestToggle()
	s.RunUntilIdle()
	c.RequestToggle()
	s.RunUntilIdle()

	modes = config.AnimationModes{Logo: config.LogoMorph, Kunai: config.KunaiDrop}
	start := s.Now()
	c.RequestToggle()
	s.RunUntilIdle()

	if got := s.Now() - start; got != 5350*ms {
		t.Errorf("second forward transition took %v, want 5350ms", got)
	}
}

// TestModeController_FallbackSafety 测试未知模式等同默认模式
func TestModeController_FallbackSafety(t *testing.T) {
	run := func(modes config.AnimationModes) []PresenterCall {
		c, s, rec, _ := newTestController(ModeNormal, modes)
		c.RequestToggle()
		s.RunUntilIdle()
		if c.Mode() != ModeNeon || c.IsAnimating() {
			t.Errorf("modes %+v: mode=%s animating=%v", modes, c.Mode(), c.IsAnimating())
		}
		return rec.Calls()
	}

	want := run(config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiFade})
	for _, modes := range []config.AnimationModes{
		{},
		{Logo: "spin", Kunai: "explode"},
		{Logo: "POP", Kunai: " Fade "},
	} {
		if got := run(modes); !reflect.DeepEqual(got, want) {
			t.Errorf("modes %+v behaved differently from pop+fade", modes)
		}
	}
}

// TestModeController_EarlyGuardRelease 测试遮罩淡出期间即可再次切换
func TestModeController_EarlyGuardRelease(t *testing.T) {
	c, s, rec, view := newTestController(ModeNormal, config.DefaultAnimationModes())

	c.RequestToggle()
	s.Advance(4800 * ms) // reveal

	if c.IsAnimating() {
		t.Fatal("guard should be released at reveal")
	}
	if !view.overlayVisible {
		t.Fatal("overlay should still be visible during fade-out")
	}

	// 遮罩仍在淡出，返回请求被接受
	if !c.RequestToggle() {
		t.Fatal("toggle during overlay fade-out should be accepted")
	}
	s.RunUntilIdle()

	if c.Mode() != ModeNormal || c.IsAnimating() {
		t.Errorf("mode=%s animating=%v, want normal/false", c.Mode(), c.IsAnimating())
	}
	// 前一次转场的清理照常执行
	if _, ok := rec.FirstAt(CallOverlayVisible, "overlay", "false"); !ok {
		t.Error("cleanup of the first transition did not run")
	}
	assertSteady(t, view, ModeNormal)
}

// TestModeController_ModeChangedCallback 测试回调在提交后调用
func TestModeController_ModeChangedCallback(t *testing.T) {
	c, s, _, _ := newTestController(ModeNormal, config.DefaultAnimationModes())

	var got []Mode
	c.SetModeChangedCallback(func(m Mode) {
		if c.IsAnimating() {
			t.Error("callback should run after the guard is released")
		}
		got = append(got, m)
	})

	c.RequestToggle()
	s.RunUntilIdle()
	c.RequestToggle()
	s.RunUntilIdle()

	want := []Mode{ModeNeon, ModeNormal}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("callbacks = %v, want %v", got, want)
	}
}

// TestModeController_DrainFromCallback 测试模式回调中排空调度器不会卡住
func TestModeController_DrainFromCallback(t *testing.T) {
	c, s, _, view := newTestController(ModeNormal, config.DefaultAnimationModes())

	drained := -1
	c.SetModeChangedCallback(func(Mode) {
		drained = s.RunUntilIdle()
	})

	c.RequestToggle()
	s.RunUntilIdle()

	if drained != 0 {
		t.Errorf("RunUntilIdle inside callback = %d, want 0", drained)
	}
	if !s.Idle() || s.Now() != 5500*ms {
		t.Errorf("Expected idle at 5500ms, got pending=%d now=%v", s.Pending(), s.Now())
	}
	assertSteady(t, view, ModeNeon)
}

// TestParseMode 测试初始模式解析
func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"normal": ModeNormal,
		"neon":   ModeNeon,
		" NEON ": ModeNeon,
		"":       ModeNormal,
		"dark":   ModeNormal,
	}
	for in, want := range tests {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if ModeNormal.Opposite() != ModeNeon || ModeNeon.Opposite() != ModeNormal {
		t.Error("Opposite() is not an involution")
	}
}
