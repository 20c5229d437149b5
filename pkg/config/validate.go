package config

import "fmt"

// ValidateResumeConfig 检查配置中会被静默降级的值
//
// 不返回错误：动画模式和初始模式写错时程序照常运行（回退到默认值），
// 这里只生成提示，供 neonctl check 和启动日志使用。
func ValidateResumeConfig(cfg *ResumeConfig) []string {
	var warnings []string

	switch canonical(cfg.Global.InitialMode) {
	case InitialModeNormal, InitialModeNeon:
	default:
		warnings = append(warnings, unknownValueWarning("global.initialMode",
			cfg.Global.InitialMode, InitialModeNormal,
			[]string{InitialModeNormal, InitialModeNeon}))
	}

	if logo := string(cfg.Global.AnimationModes.Logo); logo != "" && canonical(logo) != string(ParseLogoVariant(logo)) {
		candidates := make([]string, 0, len(LogoVariants()))
		for _, v := range LogoVariants() {
			candidates = append(candidates, string(v))
		}
		warnings = append(warnings, unknownValueWarning("global.animationModes.logo", logo, string(LogoPop), candidates))
	}

	if kunai := string(cfg.Global.AnimationModes.Kunai); kunai != "" && canonical(kunai) != string(ParseKunaiVariant(kunai)) {
		candidates := make([]string, 0, len(KunaiVariants()))
		for _, v := range KunaiVariants() {
			candidates = append(candidates, string(v))
		}
		warnings = append(warnings, unknownValueWarning("global.animationModes.kunai", kunai, string(KunaiFade), candidates))
	}

	colors := []struct {
		field string
		value string
	}{
		{"normalMode.backgroundColor", cfg.NormalMode.BackgroundColor},
		{"neonMode.primaryColor", cfg.NeonMode.PrimaryColor},
		{"neonMode.backgroundColor", cfg.NeonMode.BackgroundColor},
	}
	for _, c := range colors {
		if _, err := ParseHexColor(c.value); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", c.field, err))
		}
	}

	return warnings
}

func unknownValueWarning(field, value, fallback string, candidates []string) string {
	msg := fmt.Sprintf("%s: unknown value %q, falling back to %q", field, value, fallback)
	if hint, ok := SuggestVariant(value, candidates); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return msg
}
