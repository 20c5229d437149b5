package transition

import (
	"time"

	"github.com/decker502/neonswitch/pkg/config"
)

// Region 可被单独控制显示与透明度的界面区域
type Region int

const (
	// RegionNormal A面容器
	RegionNormal Region = iota
	// RegionNeon B面容器
	RegionNeon
)

// String 返回区域名
func (r Region) String() string {
	if r == RegionNeon {
		return "neonView"
	}
	return "normalView"
}

// RegionFor 返回某模式对应的界面区域
func RegionFor(m Mode) Region {
	if m == ModeNeon {
		return RegionNeon
	}
	return RegionNormal
}

// VisualState 可开关的视觉标记（对应样式类）
type VisualState string

const (
	StateFlash           VisualState = "anim-flash"
	StateLogoStep1       VisualState = "anim-logo-step1"
	StateLogoStep2       VisualState = "anim-logo-step2"
	StateMerge           VisualState = "anim-kunai"
	StateDrop            VisualState = "anim-drop"
	StateBackgroundFlash VisualState = "anim-bg-flash"
	StateLogoPop         VisualState = "mode-pop"
	StateLogoMorph       VisualState = "mode-morph"

	// StateActiveChrome B面点亮后的霓虹特效
	StateActiveChrome VisualState = "neon-active"
)

// overlayStates 遮罩层上所有转场标记，清理步骤会全部关闭
var overlayStates = []VisualState{
	StateFlash,
	StateLogoStep1,
	StateLogoStep2,
	StateMerge,
	StateDrop,
	StateBackgroundFlash,
	StateLogoPop,
	StateLogoMorph,
}

// OverlayStates 返回遮罩层上的全部转场标记
func OverlayStates() []VisualState {
	out := make([]VisualState, len(overlayStates))
	copy(out, overlayStates)
	return out
}

// LogoVariantState 返回 Logo 模式对应的标记
func LogoVariantState(v config.LogoVariant) VisualState {
	if config.ParseLogoVariant(string(v)) == config.LogoMorph {
		return StateLogoMorph
	}
	return StateLogoPop
}

// ViewPresenter 由渲染层实现的视觉状态接口
//
// 所有调用都是同步的、不返回错误；fade 为透明度过渡时长，0 表示立即生效。
type ViewPresenter interface {
	SetOverlayOpacity(v float64, fade time.Duration)
	SetOverlayVisible(visible bool)
	SetRegionVisible(region Region, visible bool)
	SetRegionOpacity(region Region, v float64, fade time.Duration)
	SetVisualState(state VisualState, active bool)
	SetModeClass(mode Mode)
}
