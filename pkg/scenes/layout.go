package scenes

import (
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/view"
)

// Rect 屏幕上的矩形区域
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SwitchButtonRect 返回 A面切换按钮（Logo）的点击区域
func SwitchButtonRect() Rect {
	half := config.SwitchButtonSize / 2
	return Rect{
		X: config.SwitchButtonCenterX - half,
		Y: config.SwitchButtonCenterY - half,
		W: config.SwitchButtonSize,
		H: config.SwitchButtonSize,
	}
}

// BackButtonRect 返回 B面返回按钮的点击区域
func BackButtonRect() Rect {
	return Rect{
		X: config.BackButtonX,
		Y: config.BackButtonY,
		W: config.BackButtonWidth,
		H: config.BackButtonHeight,
	}
}

// ResumePanelRect 返回简历图区域
func ResumePanelRect() Rect {
	return Rect{
		X: config.ResumePanelX,
		Y: config.ResumePanelY,
		W: config.ResumePanelWidth,
		H: config.ResumePanelHeight,
	}
}

// LayoutCards 计算卡片位置
//
// 个人信息卡片占满第一行，其余卡片按 CardGridColumns 列从左到右、从上到下排列。
func LayoutCards(cards []view.Card) []Rect {
	rects := make([]Rect, 0, len(cards))
	fullWidth := config.CardWidth*config.CardGridColumns + config.CardGap*(config.CardGridColumns-1)

	y := config.CardGridY
	col := 0
	for _, c := range cards {
		if c.Kind == view.CardProfile {
			if col > 0 {
				y += config.CardHeight + config.CardGap
				col = 0
			}
			rects = append(rects, Rect{X: config.CardGridX, Y: y, W: fullWidth, H: config.ProfileCardHeight})
			y += config.ProfileCardHeight + config.CardGap
			continue
		}

		x := config.CardGridX + float64(col)*(config.CardWidth+config.CardGap)
		rects = append(rects, Rect{X: x, Y: y, W: config.CardWidth, H: config.CardHeight})
		col++
		if col == config.CardGridColumns {
			col = 0
			y += config.CardHeight + config.CardGap
		}
	}
	return rects
}

// FitInside 返回把 w×h 的图片等比缩放放进 r 后的缩放系数与左上角
func FitInside(r Rect, w, h float64) (scale, x, y float64) {
	if w <= 0 || h <= 0 {
		return 0, r.X, r.Y
	}
	scale = r.W / w
	if s := r.H / h; s < scale {
		scale = s
	}
	x = r.X + (r.W-w*scale)/2
	y = r.Y + (r.H-h*scale)/2
	return scale, x, y
}
