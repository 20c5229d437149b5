package view

import (
	"html"
	"regexp"
	"strings"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/mattn/go-runewidth"
)

// CardKind 卡片类型
type CardKind int

const (
	// CardProfile 个人信息大卡片（占满一行）
	CardProfile CardKind = iota
	// CardInfo 普通卡片
	CardInfo
)

// Card B面网格中的一张卡片
type Card struct {
	Kind     CardKind
	Title    string
	Subtitle []string
	Body     []string
	Tags     []string
	Avatar   string
}

var (
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
)

// SplitMarkup 把配置中的富文本拆成纯文本行
//
// <br> 视为换行，其它标签丢弃，HTML 实体解码，空行去掉。
func SplitMarkup(s string) []string {
	s = lineBreakPattern.ReplaceAllString(s, "\n")
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// BuildCards 根据 B面配置生成卡片列表
//
// 第一张总是个人信息卡片：名字、头衔、简介，标签依次为 MBTI、音乐和自定义标签。
// 之后按配置顺序排列普通卡片。
func BuildCards(cfg config.NeonModeConfig) []Card {
	p := cfg.Profile

	var tags []string
	if t := strings.TrimSpace(p.MBTI); t != "" {
		tags = append(tags, t)
	}
	if t := strings.TrimSpace(p.Music); t != "" {
		tags = append(tags, "♪ "+t)
	}
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	cards := make([]Card, 0, len(cfg.Cards)+1)
	cards = append(cards, Card{
		Kind:     CardProfile,
		Title:    strings.TrimSpace(p.Name),
		Subtitle: SplitMarkup(p.Title),
		Body:     SplitMarkup(p.Bio),
		Tags:     tags,
		Avatar:   p.Avatar,
	})

	for _, c := range cfg.Cards {
		cards = append(cards, Card{
			Kind:  CardInfo,
			Title: strings.Join(SplitMarkup(c.Title), " "),
			Body:  SplitMarkup(c.Content),
		})
	}
	return cards
}

// Fit 按显示宽度截断（中文字符占两列）
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// WrapLines 按显示宽度折行，单个字符宽于 width 时独占一行
func WrapLines(lines []string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range lines {
		var b strings.Builder
		w := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if w > 0 && w+rw > width {
				out = append(out, b.String())
				b.Reset()
				w = 0
			}
			b.WriteRune(r)
			w += rw
		}
		out = append(out, b.String())
	}
	return out
}

// TextWidth 返回字符串的显示宽度
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
