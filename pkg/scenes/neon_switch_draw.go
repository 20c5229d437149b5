package scenes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
	"github.com/decker502/neonswitch/pkg/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	placeholderColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	normalTextColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	neonTextColor    = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	cardFillColor    = color.RGBA{R: 22, G: 22, B: 26, A: 255}
)

// Draw 绘制当前帧：背景 → A面 → B面 → 转场遮罩
func (s *NeonSwitchScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background(s.view))

	if a := s.view.RegionOpacity(transition.RegionNormal); a > 0 {
		s.drawNormalView(screen, a)
	}
	if a := s.view.RegionOpacity(transition.RegionNeon); a > 0 {
		s.drawNeonView(screen, a)
	}
	if s.view.OverlayVisible() {
		s.drawOverlay(screen)
	}
	if s.showDebug {
		s.drawDebugInfo(screen)
	}
}

// drawNormalView A面：简历图 + 切换按钮 + 标语
func (s *NeonSwitchScene) drawNormalView(screen *ebiten.Image, alpha float64) {
	panel := ResumePanelRect()
	s.drawImageFit(screen, s.cfg.NormalMode.ResumeImagePath, panel, alpha, "RESUME")

	button := SwitchButtonRect()
	s.drawImageFit(screen, s.cfg.Global.LogoPath, button, alpha, "SWITCH")

	// 悬停高亮
	if px, py := pointerPosition(); button.Contains(px, py) && !s.controller.IsAnimating() {
		strokeRect(screen, button, 3, withAlpha(s.palette.NeonPrimary, alpha))
	}

	if s.cfg.Global.Slogan != "" {
		cx, cy := button.Center()
		s.text.drawCentered(screen, s.cfg.Global.Slogan, cx, cy+config.SloganOffsetY, fontSizeNormal, withAlpha(normalTextColor, alpha))
	}
}

// drawNeonView B面：卡片网格 + 返回按钮
func (s *NeonSwitchScene) drawNeonView(screen *ebiten.Image, alpha float64) {
	primary := s.palette.NeonPrimary

	// 点亮后边框呼吸
	glow := 1.0
	if s.view.StateActive(transition.StateActiveChrome) {
		glow = 0.75 + 0.25*math.Sin(s.elapsed.Seconds()*math.Pi)
	}
	border := withAlpha(primary, alpha*glow)

	if s.cfg.Global.PageTitle != "" {
		s.text.draw(screen, s.cfg.Global.PageTitle, config.CardGridX, config.BackButtonY+8, fontSizeTitle, withAlpha(primary, alpha))
	}

	for i, card := range s.cards {
		r := s.cardRects[i]
		fillRect(screen, r, withAlpha(cardFillColor, alpha))
		strokeRect(screen, r, config.CardBorderWidth, border)
		if card.Kind == view.CardProfile {
			s.drawProfileCard(screen, card, r, alpha)
		} else {
			s.drawInfoCard(screen, card, r, alpha)
		}
	}

	back := BackButtonRect()
	strokeRect(screen, back, config.CardBorderWidth, border)
	cx, cy := back.Center()
	s.text.drawCentered(screen, "← BACK", cx, cy-s.text.lineHeight(fontSizeNormal)/2, fontSizeNormal, withAlpha(primary, alpha))
}

func (s *NeonSwitchScene) drawProfileCard(screen *ebiten.Image, card view.Card, r Rect, alpha float64) {
	pad := config.CardPadding
	avatar := Rect{X: r.X + pad, Y: r.Y + pad, W: r.H - 2*pad, H: r.H - 2*pad}
	s.drawImageFit(screen, card.Avatar, avatar, alpha, "AVATAR")

	x := avatar.X + avatar.W + pad*2
	y := r.Y + pad
	primary := withAlpha(s.palette.NeonPrimary, alpha)
	textColor := withAlpha(neonTextColor, alpha)

	s.text.draw(screen, card.Title, x, y, fontSizeTitle, primary)
	y += s.text.lineHeight(fontSizeTitle)
	for _, line := range card.Subtitle {
		s.text.draw(screen, line, x, y, fontSizeSmall, textColor)
		y += s.text.lineHeight(fontSizeSmall)
	}
	y += pad / 2
	for _, line := range card.Body {
		s.text.draw(screen, line, x, y, fontSizeNormal, textColor)
		y += s.text.lineHeight(fontSizeNormal)
	}

	// 标签放在卡片底部一行
	tagY := r.Y + r.H - pad - s.text.lineHeight(fontSizeSmall) - 4
	tagX := x
	for _, tag := range card.Tags {
		w := s.text.measure(tag, fontSizeSmall) + 16
		if tagX+w > r.X+r.W-pad {
			break
		}
		strokeRect(screen, Rect{X: tagX, Y: tagY, W: w, H: s.text.lineHeight(fontSizeSmall) + 4}, 1, primary)
		s.text.draw(screen, tag, tagX+8, tagY+2, fontSizeSmall, primary)
		tagX += w + 8
	}
}

func (s *NeonSwitchScene) drawInfoCard(screen *ebiten.Image, card view.Card, r Rect, alpha float64) {
	pad := config.CardPadding
	x, y := r.X+pad, r.Y+pad
	s.text.draw(screen, card.Title, x, y, fontSizeNormal, withAlpha(s.palette.NeonPrimary, alpha))
	y += s.text.lineHeight(fontSizeNormal) + pad/2

	for _, line := range s.text.wrap(card.Body, fontSizeNormal, r.W-2*pad) {
		if y+s.text.lineHeight(fontSizeNormal) > r.Y+r.H-pad {
			break
		}
		s.text.draw(screen, line, x, y, fontSizeNormal, withAlpha(neonTextColor, alpha))
		y += s.text.lineHeight(fontSizeNormal)
	}
}

// drawOverlay 转场遮罩：黑屏 + Logo 闪现 + 苦无合并/下冲 + 背景闪烁
func (s *NeonSwitchScene) drawOverlay(screen *ebiten.Image) {
	overlayAlpha := s.view.OverlayOpacity()
	full := Rect{W: config.WindowWidth, H: config.WindowHeight}
	fillRect(screen, full, withAlpha(color.RGBA{A: 255}, overlayAlpha))

	if age, ok := s.view.StateAge(transition.StateBackgroundFlash); ok {
		fillRect(screen, full, withAlpha(s.palette.NeonPrimary, view.FlashAlpha(age)*0.8))
	}

	cx, cy := float64(config.WindowWidth)/2, float64(config.WindowHeight)/2
	variant := config.ParseLogoVariant(string(s.cfg.Global.AnimationModes.Logo))

	if age, ok := s.view.StateAge(transition.StateLogoStep1); ok {
		s.drawLogo(screen, s.cfg.Global.TransitionLogos.Logo1, cx, cy, view.LogoPoseAt(age, variant), overlayAlpha)
	}
	if age, ok := s.view.StateAge(transition.StateLogoStep2); ok {
		s.drawLogo(screen, s.cfg.Global.TransitionLogos.Logo2, cx, cy, view.LogoPoseAt(age, variant), overlayAlpha)
	}

	if age, ok := s.view.StateAge(transition.StateMerge); ok {
		offset := view.KunaiOffset(age, config.KunaiStartOffset)
		alpha := view.KunaiAlpha(age, s.cfg.Global.AnimationModes.Kunai) * overlayAlpha
		drop := 0.0
		if dropAge, dropping := s.view.StateAge(transition.StateDrop); dropping {
			drop = view.DropOffset(dropAge, config.KunaiDropDistance)
		}
		s.drawKunai(screen, cx-offset, cy+drop, false, alpha)
		s.drawKunai(screen, cx+offset, cy+drop, true, alpha)
	}
}

// drawLogo 以 (cx, cy) 为中心按姿态绘制 Logo
func (s *NeonSwitchScene) drawLogo(screen *ebiten.Image, path string, cx, cy float64, pose view.LogoPose, alpha float64) {
	img := s.resources.ImageOrNil(path)
	size := config.OverlayLogoSize * pose.Scale
	if img == nil {
		r := Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
		strokeRect(screen, r, 4, withAlpha(s.palette.NeonPrimary, pose.Alpha*alpha))
		return
	}

	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	fit, _, _ := FitInside(Rect{W: config.OverlayLogoSize, H: config.OverlayLogoSize}, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(fit*pose.Scale, fit*pose.Scale)
	op.GeoM.Skew(pose.Skew, 0)
	op.GeoM.Rotate(pose.Rotation)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(pose.Alpha * alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawKunai 以 (cx, cy) 为中心绘制苦无，右侧的水平翻转
func (s *NeonSwitchScene) drawKunai(screen *ebiten.Image, cx, cy float64, mirrored bool, alpha float64) {
	if alpha <= 0 {
		return
	}
	size := config.OverlayKunaiSize
	img := s.resources.ImageOrNil(s.cfg.Global.KunaiPath)
	if img == nil {
		r := Rect{X: cx - size/2, Y: cy - size/8, W: size, H: size / 4}
		fillRect(screen, r, withAlpha(s.palette.NeonPrimary, alpha))
		return
	}

	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	fit, _, _ := FitInside(Rect{W: size, H: size}, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	if mirrored {
		op.GeoM.Scale(-fit, fit)
	} else {
		op.GeoM.Scale(fit, fit)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawImageFit 把图片等比缩放绘制到区域内，图片缺失时绘制带标签的占位框
func (s *NeonSwitchScene) drawImageFit(screen *ebiten.Image, path string, r Rect, alpha float64, label string) {
	img := s.resources.ImageOrNil(path)
	if img == nil {
		strokeRect(screen, r, 2, withAlpha(placeholderColor, alpha))
		cx, cy := r.Center()
		s.text.drawCentered(screen, label, cx, cy-s.text.lineHeight(fontSizeSmall)/2, fontSizeSmall, withAlpha(placeholderColor, alpha))
		return
	}

	scale, x, y := FitInside(r, float64(img.Bounds().Dx()), float64(img.Bounds().Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawDebugInfo 左下角显示控制器与时间轴状态
func (s *NeonSwitchScene) drawDebugInfo(screen *ebiten.Image) {
	states := s.view.ActiveStates()
	names := make([]string, len(states))
	for i, st := range states {
		names[i] = string(st)
	}

	lines := []string{
		fmt.Sprintf("mode=%s animating=%v", s.controller.Mode(), s.controller.IsAnimating()),
		fmt.Sprintf("transition=%s", s.controller.CurrentTransitionID()),
		fmt.Sprintf("clock=%v pending=%d fired=%d", s.scheduler.Now(), s.scheduler.Pending(), s.scheduler.Fired()),
		fmt.Sprintf("overlay=%.2f normal=%.2f neon=%.2f",
			s.view.OverlayOpacity(),
			s.view.RegionOpacity(transition.RegionNormal),
			s.view.RegionOpacity(transition.RegionNeon)),
		"states=" + strings.Join(names, ","),
	}

	y := config.WindowHeight - len(lines)*debugGlyphHeight - 8
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, y+i*debugGlyphHeight)
	}
}

func fillRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r Rect, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, false)
}

// withAlpha 按不透明度缩放颜色（color.RGBA 为预乘 alpha）
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
