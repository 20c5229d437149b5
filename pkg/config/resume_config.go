package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// 初始模式配置值
const (
	InitialModeNormal = "normal" // A面：简历图
	InitialModeNeon   = "neon"   // B面：霓虹卡片
)

// ResumeConfig 双模态简历的完整配置
//
// 对应配置文件的三个顶层块：
//   - global: 初始模式、动画模式、Logo 与标语
//   - normalMode: A面（简历图）
//   - neonMode: B面（霓虹卡片）
//
// 转场核心只读取 Global.InitialMode 和 Global.AnimationModes，
// 其余字段由渲染层消费。
type ResumeConfig struct {
	Global     GlobalConfig     `yaml:"global" json:"global"`
	NormalMode NormalModeConfig `yaml:"normalMode" json:"normalMode"`
	NeonMode   NeonModeConfig   `yaml:"neonMode" json:"neonMode"`
}

// GlobalConfig 全局配置
type GlobalConfig struct {
	InitialMode     string          `yaml:"initialMode" json:"initialMode"`
	LogoPath        string          `yaml:"logoPath" json:"logoPath"`
	KunaiPath       string          `yaml:"kunaiPath" json:"kunaiPath"`
	TransitionLogos TransitionLogos `yaml:"transitionLogos" json:"transitionLogos"`
	AnimationModes  AnimationModes  `yaml:"animationModes" json:"animationModes"`
	Slogan          string          `yaml:"slogan" json:"slogan"`
	PageTitle       string          `yaml:"pageTitle" json:"pageTitle"`
	// FontPath 窗口端使用的 TTF/OTF 字体，留空时使用调试字体（不支持中文）
	FontPath string `yaml:"fontPath" json:"fontPath"`
}

// TransitionLogos 转场中闪现的两个 Logo，留空时使用 GlobalConfig.LogoPath
type TransitionLogos struct {
	Logo1 string `yaml:"logo1" json:"logo1"`
	Logo2 string `yaml:"logo2" json:"logo2"`
}

// NormalModeConfig A面配置
type NormalModeConfig struct {
	ResumeImagePath string `yaml:"resumeImagePath" json:"resumeImagePath"`
	BackgroundColor string `yaml:"backgroundColor" json:"backgroundColor"`
}

// NeonModeConfig B面配置
type NeonModeConfig struct {
	PrimaryColor    string        `yaml:"primaryColor" json:"primaryColor"`
	BackgroundColor string        `yaml:"backgroundColor" json:"backgroundColor"`
	Profile         ProfileConfig `yaml:"profile" json:"profile"`
	Cards           []CardConfig  `yaml:"cards" json:"cards"`
}

// ProfileConfig 个人信息大卡片
type ProfileConfig struct {
	Name   string   `yaml:"name" json:"name"`
	Title  string   `yaml:"title" json:"title"`
	Avatar string   `yaml:"avatar" json:"avatar"`
	MBTI   string   `yaml:"mbti" json:"mbti"`
	Tags   []string `yaml:"tags" json:"tags"`
	Music  string   `yaml:"music" json:"music"`
	Bio    string   `yaml:"bio" json:"bio"`
}

// CardConfig 技能/兴趣卡片，content 支持 <br> 换行
type CardConfig struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// DefaultResumeConfig 返回默认配置
func DefaultResumeConfig() *ResumeConfig {
	return &ResumeConfig{
		Global: GlobalConfig{
			InitialMode:    InitialModeNormal,
			LogoPath:       "assets/logo.png",
			KunaiPath:      "assets/Kunai.png",
			AnimationModes: DefaultAnimationModes(),
			PageTitle:      "NeonSwitch",
		},
		NormalMode: NormalModeConfig{
			BackgroundColor: "#ffffff",
		},
		NeonMode: NeonModeConfig{
			PrimaryColor:    "#00ffff",
			BackgroundColor: "#0a0a0a",
		},
	}
}

// LoadResumeConfig 从文件加载配置
//
// 根据扩展名选择解析器：
//   - .yaml / .yml: YAML
//   - .json / .jsonc: 允许注释和尾逗号的 JSON
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *ResumeConfig: 已补全默认值的配置
//   - error: 读取或解析失败时返回错误
func LoadResumeConfig(path string) (*ResumeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume config %s: %w", path, err)
	}

	cfg, err := ParseResumeConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseResumeConfig 解析配置内容，ext 为文件扩展名（含点号）
func ParseResumeConfig(data []byte, ext string) (*ResumeConfig, error) {
	var cfg ResumeConfig

	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		standard, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := json.Unmarshal(standard, &cfg); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	applyResumeDefaults(&cfg)
	return &cfg, nil
}

// applyResumeDefaults 为缺失的可选字段补默认值
//
// 动画模式不在这里纠正：未知值在每次转场时由解析器降级，
// 这样 check 命令仍能看到用户原始写法并给出提示。
func applyResumeDefaults(cfg *ResumeConfig) {
	defaults := DefaultResumeConfig()

	if cfg.Global.InitialMode == "" {
		cfg.Global.InitialMode = defaults.Global.InitialMode
	}
	if cfg.Global.LogoPath == "" {
		cfg.Global.LogoPath = defaults.Global.LogoPath
	}
	if cfg.Global.KunaiPath == "" {
		cfg.Global.KunaiPath = defaults.Global.KunaiPath
	}
	// 转场 Logo 未配置时回退到主 Logo
	if cfg.Global.TransitionLogos.Logo1 == "" {
		cfg.Global.TransitionLogos.Logo1 = cfg.Global.LogoPath
	}
	if cfg.Global.TransitionLogos.Logo2 == "" {
		cfg.Global.TransitionLogos.Logo2 = cfg.Global.LogoPath
	}
	if cfg.Global.PageTitle == "" {
		cfg.Global.PageTitle = defaults.Global.PageTitle
	}
	if cfg.NormalMode.BackgroundColor == "" {
		cfg.NormalMode.BackgroundColor = defaults.NormalMode.BackgroundColor
	}
	if cfg.NeonMode.PrimaryColor == "" {
		cfg.NeonMode.PrimaryColor = defaults.NeonMode.PrimaryColor
	}
	if cfg.NeonMode.BackgroundColor == "" {
		cfg.NeonMode.BackgroundColor = defaults.NeonMode.BackgroundColor
	}
}
