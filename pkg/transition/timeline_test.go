package transition

import (
	"reflect"
	"testing"
	"time"

	"github.com/decker502/neonswitch/pkg/config"
)

// stepOffsets 返回步骤名 → 绝对触发时间（嵌套步骤按父步骤时间累加）
func stepOffsets(tl Timeline) map[string]time.Duration {
	out := make(map[string]time.Duration)
	for _, s := range tl.Steps {
		out[s.Name] = s.Offset
		for _, n := range s.Nested {
			out[n.Name] = s.Offset + n.Offset
		}
	}
	return out
}

// TestBuildForwardTimeline_Offsets 测试两个典型场景的触发时间
func TestBuildForwardTimeline_Offsets(t *testing.T) {
	tests := []struct {
		name  string
		modes config.AnimationModes
		want  map[string]time.Duration
	}{
		{
			name:  "pop+fade",
			modes: config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiFade},
			want: map[string]time.Duration{
				StepOverlayFadeIn:  0,
				StepHideSource:     500 * ms,
				StepLogo1:          1300 * ms,
				StepLogo2:          2300 * ms,
				StepMerge:          3300 * ms,
				StepPrepareTarget:  4300 * ms,
				StepReveal:         4800 * ms,
				StepOverlayFadeOut: 4800 * ms,
				StepCleanup:        5500 * ms,
			},
		},
		{
			name:  "morph+drop",
			modes: config.AnimationModes{Logo: config.LogoMorph, Kunai: config.KunaiDrop},
			want: map[string]time.Duration{
				StepOverlayFadeIn:   0,
				StepHideSource:      500 * ms,
				StepLogo1:           1000 * ms,
				StepLogo2:           1750 * ms,
				StepMerge:           2550 * ms,
				StepDrop:            3550 * ms,
				StepBackgroundFlash: 3750 * ms,
				StepPrepareTarget:   4150 * ms,
				StepReveal:          4650 * ms,
				StepOverlayFadeOut:  4650 * ms,
				StepCleanup:         5350 * ms,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := BuildForwardTimeline(ResolveDurations(tt.modes), tt.modes, NewRecordingPresenter(nil), func() {})

			got := stepOffsets(tl)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("offsets = %v\nwant %v", got, tt.want)
			}
			if tl.Duration() != ResolveDurations(tt.modes).Total() {
				t.Errorf("Duration() = %v, want %v", tl.Duration(), ResolveDurations(tt.modes).Total())
			}
		})
	}
}

// TestBuildForwardTimeline_Order 测试步骤顺序与偏移单调不减
func TestBuildForwardTimeline_Order(t *testing.T) {
	modes := config.AnimationModes{Logo: config.LogoPop, Kunai: config.KunaiDrop}
	tl := BuildForwardTimeline(ResolveDurations(modes), modes, NewRecordingPresenter(nil), func() {})

	want := []string{
		StepOverlayFadeIn, StepHideSource, StepLogo1, StepLogo2, StepMerge,
		StepDrop, StepBackgroundFlash, StepPrepareTarget, StepReveal, StepOverlayFadeOut, StepCleanup,
	}
	if got := tl.StepNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("StepNames() = %v, want %v", got, want)
	}

	for i := 1; i < len(tl.Steps); i++ {
		if tl.Steps[i].Offset < tl.Steps[i-1].Offset {
			t.Errorf("step %s offset %v < previous %v", tl.Steps[i].Name, tl.Steps[i].Offset, tl.Steps[i-1].Offset)
		}
	}
}

// TestBuildForwardTimeline_NoDropStep 测试非 drop 模式不包含下落步骤
func TestBuildForwardTimeline_NoDropStep(t *testing.T) {
	for _, kunai := range []config.KunaiVariant{config.KunaiFade, "", "sideways"} {
		modes := config.AnimationModes{Logo: config.LogoMorph, Kunai: kunai}
		tl := BuildForwardTimeline(ResolveDurations(modes), modes, NewRecordingPresenter(nil), func() {})

		offsets := stepOffsets(tl)
		if _, ok := offsets[StepDrop]; ok {
			t.Errorf("kunai=%q: unexpected drop step", kunai)
		}
		if _, ok := offsets[StepBackgroundFlash]; ok {
			t.Errorf("kunai=%q: unexpected background flash step", kunai)
		}
		// 合并后直接准备 B面
		if offsets[StepPrepareTarget] != offsets[StepMerge]+MergeAnimDuration {
			t.Errorf("kunai=%q: prepare at %v, want merge+%v", kunai, offsets[StepPrepareTarget], MergeAnimDuration)
		}
	}
}

// TestBuildForwardTimeline_CommitOnlyAtReveal 测试只有 reveal 步骤提交模式
func TestBuildForwardTimeline_CommitOnlyAtReveal(t *testing.T) {
	modes := config.DefaultAnimationModes()
	committed := ""
	tl := BuildForwardTimeline(ResolveDurations(modes), modes, NewRecordingPresenter(nil), func() {
		if committed != "" {
			t.Fatal("commit called twice")
		}
		committed = "done"
	})

	for _, s := range tl.Steps {
		s.Action()
		if s.Name == StepReveal && committed == "" {
			t.Error("reveal step did not commit")
		}
		if s.Name == StepPrepareTarget && committed != "" {
			t.Error("committed before reveal")
		}
	}
}

// TestBuildReverseTimeline 测试返回时间轴
func TestBuildReverseTimeline(t *testing.T) {
	rec := NewRecordingPresenter(nil)
	commits := 0
	tl := BuildReverseTimeline(rec, func() { commits++ })

	want := map[string]time.Duration{
		StepFadeTarget:    0,
		StepRestoreSource: 500 * ms,
	}
	if got := stepOffsets(tl); !reflect.DeepEqual(got, want) {
		t.Errorf("offsets = %v, want %v", got, want)
	}

	tl.Steps[0].Action()
	if commits != 0 {
		t.Error("fade-target step should not commit")
	}
	tl.Steps[1].Action()
	if commits != 1 {
		t.Errorf("Expected 1 commit, got %d", commits)
	}

	// 返回时间轴不触碰遮罩
	if calls := rec.Find(CallOverlayVisible, "", ""); len(calls) != 0 {
		t.Errorf("reverse timeline should not touch the overlay, got %d calls", len(calls))
	}
}
