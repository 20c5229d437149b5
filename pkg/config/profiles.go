package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/decker502/neonswitch/pkg/embedded"
)

// profilesDir 内置配置目录（相对 embed 根）
const profilesDir = "data/profiles"

// DefaultProfile 未指定 --config / --profile 时使用的内置配置
const DefaultProfile = "doloris"

// LoadEmbeddedProfile 加载内置配置
//
// 参数：
//   - name: 配置名（不含扩展名），如 "doloris"
//
// 返回：
//   - *ResumeConfig: 已补全默认值的配置
//   - error: embedded 未初始化、配置不存在或解析失败
func LoadEmbeddedProfile(name string) (*ResumeConfig, error) {
	file := path.Join(profilesDir, strings.ToLower(name)+".yaml")

	data, err := embedded.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded profile %q: %w", name, err)
	}

	cfg, err := ParseResumeConfig(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded profile %q: %w", name, err)
	}
	return cfg, nil
}

// ListEmbeddedProfiles 返回所有内置配置名（已排序）
func ListEmbeddedProfiles() ([]string, error) {
	matches, err := embedded.Glob(profilesDir + "/*.yaml")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Load 按优先级加载配置：显式文件路径 > 内置配置名 > 默认内置配置
func Load(configPath, profile string) (*ResumeConfig, error) {
	if configPath != "" {
		return LoadResumeConfig(configPath)
	}
	if profile == "" {
		profile = DefaultProfile
	}
	return LoadEmbeddedProfile(profile)
}
