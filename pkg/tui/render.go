package tui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
	"github.com/decker502/neonswitch/pkg/view"
)

// 终端里的苦无字形
const (
	kunaiLeft  = "━━◆"
	kunaiRight = "◆━━"
)

// kunaiCellsPerPixel 窗口坐标到终端列的换算
const kunaiCellsPerPixel = 1.0 / 14

// overlayThreshold 遮罩不透明度超过此值时遮住下面的界面
const overlayThreshold = 0.5

// View 实现 tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderBody()
	footer := m.help.View(m.keys)
	if m.showDebug {
		footer = m.debugLine() + "\n" + footer
	}

	bodyHeight := max(m.height-lipgloss.Height(footer), 1)
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(hex(m.background())))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// background 当前背景色：遮罩为黑，闪烁为主色，否则随 B面透明度混合
func (m *Model) background() color.RGBA {
	if m.view.OverlayOpacity() >= overlayThreshold {
		if age, ok := m.view.StateAge(transition.StateBackgroundFlash); ok && view.FlashAlpha(age) > 0.5 {
			return m.styles.palette.NeonPrimary
		}
		return overlayColor
	}
	return m.styles.palette.Background(m.view)
}

func (m *Model) renderBody() string {
	if m.view.OverlayOpacity() >= overlayThreshold {
		return m.renderOverlay()
	}

	normal := m.view.RegionOpacity(transition.RegionNormal)
	neon := m.view.RegionOpacity(transition.RegionNeon)
	switch {
	case neon > 0 && neon >= normal:
		return m.renderNeon(neon)
	case normal > 0:
		return m.renderNormal(normal)
	}
	return ""
}

// renderNormal A面：简历图占位 + 切换按钮 + 标语
func (m *Model) renderNormal(alpha float64) string {
	panelWidth := max(m.width/2-4, 20)
	resume := m.cfg.NormalMode.ResumeImagePath
	if resume == "" {
		resume = "(no resume image)"
	}
	panel := m.styles.normalPanel(alpha, panelWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(view.Fit(m.cfg.Global.PageTitle, panelWidth-4)),
			"",
			"▣ "+view.Fit(filepath.Base(resume), panelWidth-6),
		),
	)

	button := m.styles.switchButton(alpha).Render("⇄ " + view.Fit(logoLabel(m.cfg.Global.LogoPath), 16))
	right := lipgloss.JoinVertical(lipgloss.Center,
		button,
		"",
		lipgloss.NewStyle().Foreground(fade(m.styles.normalText(), m.styles.palette.NormalBackground, alpha)).
			Render(view.Fit(m.cfg.Global.Slogan, panelWidth)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center, panel, "    ", right)
}

// renderNeon B面：个人信息卡片 + 卡片网格
func (m *Model) renderNeon(alpha float64) string {
	if len(m.cards) == 0 {
		return ""
	}
	fullWidth := max(m.width-6, 30)
	cols := config.CardGridColumns
	if fullWidth < 60 {
		cols = 1
	}
	cardWidth := (fullWidth - (cols - 1)) / cols

	rows := []string{m.renderProfile(m.cards[0], alpha, fullWidth)}

	var row []string
	for _, card := range m.cards[1:] {
		row = append(row, m.renderCard(card, alpha, cardWidth-2))
		if len(row) == cols {
			rows = append(rows, joinRow(row))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, joinRow(row))
	}

	back := m.styles.cardTitle(alpha).Render("← b 返回")
	if m.view.StateActive(transition.StateActiveChrome) && int(m.elapsed.Seconds()*2)%2 == 0 {
		back = m.styles.cardTitle(alpha).Underline(true).Render("← b 返回")
	}
	rows = append([]string{lipgloss.PlaceHorizontal(fullWidth, lipgloss.Right, back)}, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderProfile(card view.Card, alpha float64, width int) string {
	inner := width - 4
	lines := []string{m.styles.cardTitle(alpha).Render(view.Fit(card.Title, inner))}
	for _, l := range card.Subtitle {
		lines = append(lines, view.Fit(l, inner))
	}
	lines = append(lines, "")
	lines = append(lines, view.WrapLines(card.Body, inner)...)

	if len(card.Tags) > 0 {
		var tags []string
		used := 0
		for _, t := range card.Tags {
			rendered := m.styles.tag(alpha).Render(t)
			w := lipgloss.Width(rendered)
			if used+w > inner {
				break
			}
			tags = append(tags, rendered)
			used += w
		}
		lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}
	return m.styles.card(alpha, width-2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderCard(card view.Card, alpha float64, width int) string {
	inner := max(width-4, 4)
	lines := []string{m.styles.cardTitle(alpha).Render(view.Fit(card.Title, inner))}
	lines = append(lines, view.WrapLines(card.Body, inner)...)
	return m.styles.card(alpha, width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderOverlay 遮罩：Logo 闪现、苦无合并与下冲
func (m *Model) renderOverlay() string {
	alpha := m.view.OverlayOpacity()
	style := m.styles.overlayText(alpha)
	g := m.cfg.Global

	var lines []string
	switch {
	case m.view.StateActive(transition.StateLogoStep2):
		lines = m.logoFrame(transition.StateLogoStep2, g.TransitionLogos.Logo2)
	case m.view.StateActive(transition.StateLogoStep1):
		lines = m.logoFrame(transition.StateLogoStep1, g.TransitionLogos.Logo1)
	case m.view.StateActive(transition.StateMerge):
		lines = m.kunaiFrame()
	}
	if len(lines) == 0 {
		return ""
	}
	return style.Render(strings.Join(lines, "\n"))
}

// logoFrame Logo 名字按姿态放大：缩放越大，两侧的装饰越宽
func (m *Model) logoFrame(state transition.VisualState, path string) []string {
	age, _ := m.view.StateAge(state)
	pose := view.LogoPoseAt(age, m.cfg.Global.AnimationModes.Logo)
	pad := int(pose.Scale * 6)
	label := logoLabel(path)
	deco := strings.Repeat("◇", max(pad, 0))

	line := deco + " " + label + " " + deco
	// morph 模式用错切偏移模拟扭曲
	shift := int(pose.Skew * 8)
	if shift > 0 {
		line = strings.Repeat(" ", shift) + line
	}
	return []string{line}
}

// kunaiFrame 两把苦无从两侧飞向中心；drop 模式下整体下移
func (m *Model) kunaiFrame() []string {
	age, _ := m.view.StateAge(transition.StateMerge)
	alpha := view.KunaiAlpha(age, m.cfg.Global.AnimationModes.Kunai)
	if alpha < overlayThreshold {
		return nil
	}

	gap := int(view.KunaiOffset(age, config.KunaiStartOffset) * kunaiCellsPerPixel)
	line := kunaiLeft + strings.Repeat(" ", gap*2) + kunaiRight

	var lines []string
	if dropAge, ok := m.view.StateAge(transition.StateDrop); ok {
		rows := int(view.DropOffset(dropAge, config.KunaiDropDistance) * kunaiCellsPerPixel)
		lines = append(lines, make([]string, rows)...)
	}
	return append(lines, line)
}

func (m *Model) debugLine() string {
	states := m.view.ActiveStates()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return fmt.Sprintf("mode=%s animating=%v clock=%v overlay=%.2f states=[%s]",
		m.controller.Mode(), m.controller.IsAnimating(), m.scheduler.Now(),
		m.view.OverlayOpacity(), strings.Join(names, " "))
}

// joinRow 横向拼接卡片，卡片之间留一列空白
func joinRow(cards []string) string {
	blocks := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			blocks = append(blocks, " ")
		}
		blocks = append(blocks, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// logoLabel 由图片路径得到显示名（去掉目录和扩展名）
func logoLabel(path string) string {
	base := filepath.Base(path)
	if base == "." || base == "/" {
		return "LOGO"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
