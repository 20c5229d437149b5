package scenes

import (
	"image/color"
	"strings"

	"github.com/decker502/neonswitch/pkg/game"
	"github.com/decker502/neonswitch/pkg/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 字号
const (
	fontSizeSmall  = 14.0
	fontSizeNormal = 18.0
	fontSizeTitle  = 28.0
)

// 调试字体的字形尺寸
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// textRenderer 绘制文字
//
// 配置了 fontPath 时使用 text/v2；未配置或加载失败时退回调试字体
// （只能显示 ASCII，中文显示为占位符）。
type textRenderer struct {
	resources *game.ResourceManager
	fontPath  string
}

func newTextRenderer(resources *game.ResourceManager, fontPath string) *textRenderer {
	r := &textRenderer{resources: resources}
	if fontPath == "" {
		return r
	}
	for _, size := range []float64{fontSizeSmall, fontSizeNormal, fontSizeTitle} {
		if _, err := resources.LoadFont(fontPath, size); err != nil {
			return r
		}
	}
	r.fontPath = fontPath
	return r
}

func (r *textRenderer) face(size float64) *text.GoTextFace {
	if r.fontPath == "" {
		return nil
	}
	return r.resources.GetFont(r.fontPath, size)
}

// lineHeight 返回某字号的行高
func (r *textRenderer) lineHeight(size float64) float64 {
	if r.face(size) == nil {
		return debugGlyphHeight
	}
	return size * 1.4
}

// draw 以 (x, y) 为左上角绘制一行文字
func (r *textRenderer) draw(screen *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	face := r.face(size)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCentered 以 (cx, y) 为顶部中点绘制一行文字
func (r *textRenderer) drawCentered(screen *ebiten.Image, s string, cx, y, size float64, clr color.Color) {
	face := r.face(size)
	if face == nil {
		w := r.measure(s, size)
		ebitenutil.DebugPrintAt(screen, s, int(cx-w/2), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// measure 返回一行文字的像素宽度
func (r *textRenderer) measure(s string, size float64) float64 {
	face := r.face(size)
	if face == nil {
		return float64(view.TextWidth(s) * debugGlyphWidth)
	}
	w, _ := text.Measure(s, face, 0)
	return w
}

// wrap 按像素宽度折行
//
// 逐字符测量，放不下时断行，单个字符超宽时独占一行。
// 调试字体是等宽的，直接按列数折行。
func (r *textRenderer) wrap(lines []string, size, maxWidth float64) []string {
	if maxWidth <= 0 {
		return nil
	}
	face := r.face(size)
	if face == nil {
		return view.WrapLines(lines, int(maxWidth/debugGlyphWidth))
	}

	var out []string
	for _, line := range lines {
		current := ""
		for _, ch := range line {
			next := current + string(ch)
			if current != "" && r.measure(next, size) > maxWidth {
				out = append(out, strings.TrimSpace(current))
				current = string(ch)
				continue
			}
			current = next
		}
		out = append(out, strings.TrimSpace(current))
	}
	return out
}
