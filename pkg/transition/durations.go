package transition

import (
	"time"

	"github.com/decker502/neonswitch/pkg/config"
)

// 与动画模式无关的固定时长
const (
	OverlayFadeInDuration  = 500 * time.Millisecond  // 黑屏淡入
	MergeAnimDuration      = 1000 * time.Millisecond // 苦无合并动画
	HoldBlackDuration      = 500 * time.Millisecond  // 点亮前保持黑屏
	OverlayFadeOutDuration = 700 * time.Millisecond  // 遮罩淡出
	DropExtraDuration      = 600 * time.Millisecond  // drop 模式额外时长
	DropFlashDelay         = 200 * time.Millisecond  // drop 触发后背景闪烁的蓄力时间
	ViewFadeDuration       = 500 * time.Millisecond  // 界面透明度过渡（返回 A面的等待时长）
)

// DurationTable 一次前进转场的时长表
//
// 每个字段都是相对上一个步骤的增量，由 ResolveDurations 计算后不再修改。
type DurationTable struct {
	OverlayFadeIn   time.Duration
	LogoStep1Delay  time.Duration
	LogoStep2Delay  time.Duration
	MergeDelay      time.Duration
	MergeAnimLength time.Duration
	DropExtra       time.Duration
	HoldBlack       time.Duration
	OverlayFadeOut  time.Duration
}

// ResolveDurations 根据动画模式计算时长表
//
// 纯函数，永不失败：
//   - morph: 500 / 750 / 800ms
//   - pop（默认，也是未知值的回退）: 800 / 1000 / 1000ms
//   - drop 额外 600ms，其它苦无模式为 0
func ResolveDurations(modes config.AnimationModes) DurationTable {
	modes = modes.Normalize()

	table := DurationTable{
		OverlayFadeIn:   OverlayFadeInDuration,
		LogoStep1Delay:  800 * time.Millisecond,
		LogoStep2Delay:  1000 * time.Millisecond,
		MergeDelay:      1000 * time.Millisecond,
		MergeAnimLength: MergeAnimDuration,
		HoldBlack:       HoldBlackDuration,
		OverlayFadeOut:  OverlayFadeOutDuration,
	}

	if modes.Logo == config.LogoMorph {
		table.LogoStep1Delay = 500 * time.Millisecond
		table.LogoStep2Delay = 750 * time.Millisecond
		table.MergeDelay = 800 * time.Millisecond
	}

	if modes.Kunai == config.KunaiDrop {
		table.DropExtra = DropExtraDuration
	}

	return table
}

// RevealOffset 返回 B面点亮（提交模式、释放转场锁）的时间点
func (d DurationTable) RevealOffset() time.Duration {
	return d.OverlayFadeIn + d.LogoStep1Delay + d.LogoStep2Delay + d.MergeDelay +
		d.MergeAnimLength + d.DropExtra + d.HoldBlack
}

// Total 返回前进转场最后一步（清理遮罩）的时间点
func (d DurationTable) Total() time.Duration {
	return d.RevealOffset() + d.OverlayFadeOut
}
