package view

import (
	"image/color"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
)

// Palette 两种模式用到的颜色
type Palette struct {
	NormalBackground color.RGBA
	NeonBackground   color.RGBA
	NeonPrimary      color.RGBA
}

// 配置颜色无法解析时的回退色
var (
	defaultNormalBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	defaultNeonBackground   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	defaultNeonPrimary      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// NewPalette 从配置解析颜色
func NewPalette(cfg *config.ResumeConfig) Palette {
	return Palette{
		NormalBackground: config.ParseHexColorOr(cfg.NormalMode.BackgroundColor, defaultNormalBackground),
		NeonBackground:   config.ParseHexColorOr(cfg.NeonMode.BackgroundColor, defaultNeonBackground),
		NeonPrimary:      config.ParseHexColorOr(cfg.NeonMode.PrimaryColor, defaultNeonPrimary),
	}
}

// Background 返回当前应显示的背景色
//
// 两个区域交叉淡入淡出时按 B面透明度在 Lab 空间混合。
func (p Palette) Background(v *ViewState) color.RGBA {
	if v.StateActive(transition.StateBackgroundFlash) {
		return p.NeonPrimary
	}
	t := v.RegionOpacity(transition.RegionNeon)
	return config.BlendColor(p.NormalBackground, p.NeonBackground, t)
}
