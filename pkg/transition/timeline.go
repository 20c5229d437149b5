package transition

import (
	"time"

	"github.com/decker502/neonswitch/pkg/config"
)

// 时间轴名称
const (
	TimelineForward = "normal→neon"
	TimelineReverse = "neon→normal"
)

// 步骤名称
const (
	StepOverlayFadeIn   = "overlay-fade-in"
	StepHideSource      = "hide-source"
	StepLogo1           = "logo-step1"
	StepLogo2           = "logo-step2"
	StepMerge           = "merge"
	StepDrop            = "drop"
	StepBackgroundFlash = "background-flash"
	StepPrepareTarget   = "prepare-target"
	StepReveal          = "reveal"
	StepOverlayFadeOut  = "overlay-fade-out"
	StepCleanup         = "cleanup"

	StepFadeTarget    = "fade-target"
	StepRestoreSource = "restore-source"
)

// Step 时间轴上的一个步骤
//
// Offset 相对时间轴开始；Nested 中的步骤相对本步骤的实际触发时间，
// 用于 drop 模式的背景闪烁。
type Step struct {
	Offset time.Duration
	Name   string
	Action func()
	Nested []Step
}

// Timeline 一次转场的有序步骤列表，Offset 单调不减
type Timeline struct {
	Name  string
	Steps []Step
}

// Duration 返回最后一个步骤（含嵌套步骤）的触发时间
func (tl Timeline) Duration() time.Duration {
	var end time.Duration
	for _, s := range tl.Steps {
		if s.Offset > end {
			end = s.Offset
		}
		for _, n := range s.Nested {
			if s.Offset+n.Offset > end {
				end = s.Offset + n.Offset
			}
		}
	}
	return end
}

// StepNames 按触发顺序返回步骤名（嵌套步骤紧跟在父步骤之后）
func (tl Timeline) StepNames() []string {
	names := make([]string, 0, len(tl.Steps))
	for _, s := range tl.Steps {
		names = append(names, s.Name)
		for _, n := range s.Nested {
			names = append(names, n.Name)
		}
	}
	return names
}

// BuildForwardTimeline 构建 A面 → B面 的转场时间轴
//
// 时间游标从 0 开始累加：
//
//	0              黑屏淡入开始
//	+OverlayFadeIn 隐藏 A面（防止透出背景）
//	+LogoStep1     Logo 1 闪现
//	+LogoStep2     Logo 2 闪现
//	+Merge         苦无飞来合并
//	+MergeAnim     drop 模式：下落，+200ms 背景闪烁；游标再加 DropExtra
//	               准备 B面（可见但透明度为 0）
//	+HoldBlack     点亮 B面，提交模式（commit），遮罩开始淡出
//	+FadeOut       清理遮罩
//
// 参数：
//   - d: 时长表
//   - modes: 动画模式（决定 Logo 标记与是否包含 drop 步骤）
//   - p: 视觉状态接口
//   - commit: 点亮时调用，由 ModeController 提交模式并释放转场锁
func BuildForwardTimeline(d DurationTable, modes config.AnimationModes, p ViewPresenter, commit func()) Timeline {
	modes = modes.Normalize()
	variant := LogoVariantState(modes.Logo)

	var steps []Step
	add := func(offset time.Duration, name string, action func()) *Step {
		steps = append(steps, Step{Offset: offset, Name: name, Action: action})
		return &steps[len(steps)-1]
	}

	cursor := time.Duration(0)

	// 阶段 1：黑屏淡入
	add(cursor, StepOverlayFadeIn, func() {
		p.SetOverlayOpacity(0, 0)
		p.SetOverlayVisible(true)
		p.SetOverlayOpacity(1, d.OverlayFadeIn)
	})
	cursor += d.OverlayFadeIn

	// 全黑后直接隐藏 A面，而不是淡出
	add(cursor, StepHideSource, func() {
		p.SetRegionVisible(RegionNormal, false)
	})

	// 阶段 2：Logo 1 闪现
	cursor += d.LogoStep1Delay
	add(cursor, StepLogo1, func() {
		p.SetVisualState(StateFlash, false)
		p.SetVisualState(StateLogoStep1, true)
		p.SetVisualState(variant, true)
	})

	// 阶段 3：Logo 2 闪现
	cursor += d.LogoStep2Delay
	add(cursor, StepLogo2, func() {
		p.SetVisualState(StateLogoStep1, false)
		p.SetVisualState(StateLogoStep2, true)
		p.SetVisualState(variant, true)
	})

	// 阶段 4：苦无飞来合并
	cursor += d.MergeDelay
	add(cursor, StepMerge, func() {
		p.SetVisualState(StateLogoStep2, false)
		p.SetVisualState(StateMerge, true)
	})

	// 阶段 5：苦无下落（仅 drop 模式）
	cursor += d.MergeAnimLength
	if modes.Kunai == config.KunaiDrop {
		drop := add(cursor, StepDrop, func() {
			p.SetVisualState(StateDrop, true)
		})
		drop.Nested = []Step{{
			Offset: DropFlashDelay,
			Name:   StepBackgroundFlash,
			Action: func() {
				p.SetVisualState(StateBackgroundFlash, true)
			},
		}}
	}
	cursor += d.DropExtra

	// 阶段 6：仍是黑屏，在后台准备 B面
	add(cursor, StepPrepareTarget, func() {
		p.SetVisualState(StateMerge, false)
		p.SetVisualState(StateDrop, false)
		p.SetVisualState(StateBackgroundFlash, false)
		p.SetModeClass(ModeNeon)
		p.SetRegionOpacity(RegionNeon, 0, 0)
		p.SetRegionVisible(RegionNeon, true)
	})

	// 阶段 7-8：保持黑屏后点亮 B面
	cursor += d.HoldBlack
	add(cursor, StepReveal, func() {
		p.SetRegionOpacity(RegionNeon, 1, ViewFadeDuration)
		p.SetVisualState(StateActiveChrome, true)
		commit()
	})

	// 阶段 9：遮罩淡出与点亮同一时刻开始
	add(cursor, StepOverlayFadeOut, func() {
		p.SetOverlayOpacity(0, d.OverlayFadeOut)
	})

	cursor += d.OverlayFadeOut
	add(cursor, StepCleanup, func() {
		for _, s := range overlayStates {
			p.SetVisualState(s, false)
		}
		p.SetOverlayVisible(false)
		p.SetOverlayOpacity(0, 0)
	})

	return Timeline{Name: TimelineForward, Steps: steps}
}

// BuildReverseTimeline 构建 B面 → A面 的转场时间轴
//
// 与动画模式无关：B面淡出 500ms 后隐藏，A面从透明淡入，同时提交模式。
func BuildReverseTimeline(p ViewPresenter, commit func()) Timeline {
	return Timeline{
		Name: TimelineReverse,
		Steps: []Step{
			{
				Offset: 0,
				Name:   StepFadeTarget,
				Action: func() {
					p.SetVisualState(StateActiveChrome, false)
					p.SetRegionOpacity(RegionNeon, 0, ViewFadeDuration)
				},
			},
			{
				Offset: ViewFadeDuration,
				Name:   StepRestoreSource,
				Action: func() {
					p.SetRegionVisible(RegionNeon, false)
					p.SetModeClass(ModeNormal)
					p.SetRegionOpacity(RegionNormal, 0, 0)
					p.SetRegionVisible(RegionNormal, true)
					p.SetRegionOpacity(RegionNormal, 1, ViewFadeDuration)
					commit()
				},
			},
		},
	}
}
