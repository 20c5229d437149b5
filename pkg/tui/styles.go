package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/view"
)

// overlayColor 遮罩颜色
var overlayColor = color.RGBA{A: 255}

// styles 由配置颜色生成的样式集合
//
// 透明度在终端里用前景色向背景色混合来表现，所以样式按帧生成。
type styles struct {
	palette view.Palette
}

func newStyles(p view.Palette) styles {
	return styles{palette: p}
}

// hex 转换为 lipgloss 颜色
func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// fade 把前景色按不透明度混合到背景色
func fade(fg, bg color.RGBA, alpha float64) lipgloss.Color {
	return hex(config.BlendColor(bg, fg, alpha))
}

// normalText A面文字颜色（背景的反色灰度）
func (s styles) normalText() color.RGBA {
	bg := s.palette.NormalBackground
	if int(bg.R)+int(bg.G)+int(bg.B) > 384 {
		return color.RGBA{R: 40, G: 40, B: 40, A: 255}
	}
	return color.RGBA{R: 230, G: 230, B: 230, A: 255}
}

func (s styles) card(alpha float64, width int) lipgloss.Style {
	bg := s.palette.NeonBackground
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(s.palette.NeonPrimary, bg, alpha)).
		Foreground(fade(color.RGBA{R: 235, G: 235, B: 235, A: 255}, bg, alpha)).
		Padding(0, 1).
		Width(width)
}

func (s styles) cardTitle(alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(fade(s.palette.NeonPrimary, s.palette.NeonBackground, alpha))
}

func (s styles) tag(alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(fade(s.palette.NeonPrimary, s.palette.NeonBackground, alpha)).
		Padding(0, 1).
		MarginRight(1).
		Border(lipgloss.NormalBorder(), false, true)
}

func (s styles) normalPanel(alpha float64, width int) lipgloss.Style {
	bg := s.palette.NormalBackground
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(fade(s.normalText(), bg, alpha*0.5)).
		Foreground(fade(s.normalText(), bg, alpha)).
		Padding(1, 2).
		Width(width)
}

func (s styles) switchButton(alpha float64) lipgloss.Style {
	bg := s.palette.NormalBackground
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(fade(s.normalText(), bg, alpha)).
		Foreground(fade(s.normalText(), bg, alpha)).
		Bold(true).
		Padding(1, 4)
}

func (s styles) overlayText(alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(fade(s.palette.NeonPrimary, overlayColor, alpha))
}
