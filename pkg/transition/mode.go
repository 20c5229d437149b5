package transition

import (
	"strings"

	"github.com/decker502/neonswitch/pkg/config"
)

// Mode 当前对用户可见的界面
type Mode int

const (
	// ModeNormal A面：简历图（源界面）
	ModeNormal Mode = iota
	// ModeNeon B面：霓虹卡片（目标界面）
	ModeNeon
)

// ParseMode 解析 global.initialMode，未知值回退到 ModeNormal
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), config.InitialModeNeon) {
		return ModeNeon
	}
	return ModeNormal
}

// String 返回配置中使用的模式名
func (m Mode) String() string {
	if m == ModeNeon {
		return config.InitialModeNeon
	}
	return config.InitialModeNormal
}

// Opposite 返回另一种模式
func (m Mode) Opposite() Mode {
	if m == ModeNeon {
		return ModeNormal
	}
	return ModeNeon
}
