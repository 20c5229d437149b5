package config

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// LogoVariant Logo 闪现的动画模式
type LogoVariant string

// KunaiVariant 苦无合并后的收尾模式
type KunaiVariant string

const (
	// LogoPop 默认闪现（也是未知值的回退）
	LogoPop LogoVariant = "pop"
	// LogoMorph 扭曲变换，节奏更快
	LogoMorph LogoVariant = "morph"

	// KunaiFade 默认消失（也是未知值的回退）
	KunaiFade KunaiVariant = "fade"
	// KunaiDrop 向下冲刺 + 背景闪烁，额外占用 600ms
	KunaiDrop KunaiVariant = "drop"
)

// suggestionMaxDistance 给出 "did you mean" 提示的最大编辑距离
const suggestionMaxDistance = 2

// AnimationModes 动画模式选择（global.animationModes）
//
// 字段保留用户原始写法，Normalize 负责降级到合法值。
type AnimationModes struct {
	Logo  LogoVariant  `yaml:"logo" json:"logo"`
	Kunai KunaiVariant `yaml:"kunai" json:"kunai"`
}

// DefaultAnimationModes 返回 pop + fade
func DefaultAnimationModes() AnimationModes {
	return AnimationModes{Logo: LogoPop, Kunai: KunaiFade}
}

// Normalize 返回降级后的动画模式
//
// 大小写与首尾空白不敏感；缺失或无法识别的值分别回退到 pop / fade，
// 永不失败。
func (m AnimationModes) Normalize() AnimationModes {
	return AnimationModes{
		Logo:  ParseLogoVariant(string(m.Logo)),
		Kunai: ParseKunaiVariant(string(m.Kunai)),
	}
}

// ParseLogoVariant 解析 Logo 模式，未知值回退到 LogoPop
func ParseLogoVariant(s string) LogoVariant {
	if LogoVariant(canonical(s)) == LogoMorph {
		return LogoMorph
	}
	return LogoPop
}

// ParseKunaiVariant 解析苦无模式，未知值回退到 KunaiFade
func ParseKunaiVariant(s string) KunaiVariant {
	if KunaiVariant(canonical(s)) == KunaiDrop {
		return KunaiDrop
	}
	return KunaiFade
}

// LogoVariants 返回所有合法的 Logo 模式
func LogoVariants() []LogoVariant {
	return []LogoVariant{LogoPop, LogoMorph}
}

// KunaiVariants 返回所有合法的苦无模式
func KunaiVariants() []KunaiVariant {
	return []KunaiVariant{KunaiFade, KunaiDrop}
}

// SuggestVariant 为拼写错误的模式名找最接近的合法值
//
// 参数：
//   - value: 用户写的值
//   - candidates: 合法值列表
//
// 返回：
//   - string: 最接近的合法值
//   - bool: 是否找到足够接近的候选（编辑距离 <= 2）
func SuggestVariant(value string, candidates []string) (string, bool) {
	value = canonical(value)
	if value == "" {
		return "", false
	}

	best := ""
	bestDist := suggestionMaxDistance + 1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(value, c)
		if dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	if best == "" || bestDist == 0 {
		return "", false
	}
	return best, true
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
