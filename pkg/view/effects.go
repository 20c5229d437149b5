package view

import (
	"math"
	"time"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
)

// 标记内部动画的时长
const (
	LogoPopDuration   = 400 * time.Millisecond
	LogoMorphDuration = 500 * time.Millisecond
	FlashDuration     = 400 * time.Millisecond
)

// kunaiFadeStart fade 模式下苦无开始变淡的合并进度
const kunaiFadeStart = 0.7

// LogoPose Logo 闪现时的姿态
type LogoPose struct {
	Scale    float64
	Rotation float64 // 弧度
	Skew     float64 // 水平错切
	Alpha    float64
}

// LogoPoseAt 返回 Logo 标记开启 age 之后的姿态
//
// pop: 从小到大回弹放大；morph: 旋转 + 错切逐渐回正。
func LogoPoseAt(age time.Duration, variant config.LogoVariant) LogoPose {
	if config.ParseLogoVariant(string(variant)) == config.LogoMorph {
		p := Progress(float64(age), float64(LogoMorphDuration))
		e := 1 - math.Pow(1-p, 3)
		return LogoPose{
			Scale:    lerp(0.6, 1, e),
			Rotation: lerp(-0.35, 0, e),
			Skew:     0.5 * (1 - e) * math.Sin(p*math.Pi*3),
			Alpha:    clamp01(p * 5),
		}
	}

	p := Progress(float64(age), float64(LogoPopDuration))
	return LogoPose{
		Scale: lerp(0.2, 1, EaseOutBack(p)),
		Alpha: clamp01(p * 4),
	}
}

// KunaiOffset 苦无距屏幕中心的水平距离，合并动画期间从 start 飞到 0
func KunaiOffset(age time.Duration, start float64) float64 {
	p := Progress(float64(age), float64(transition.MergeAnimDuration))
	return start * math.Pow(1-p, 3)
}

// KunaiAlpha 合并期间苦无的不透明度
//
// drop 模式保持不透明（随后下冲）；fade 模式在合并末段淡出。
func KunaiAlpha(age time.Duration, variant config.KunaiVariant) float64 {
	if config.ParseKunaiVariant(string(variant)) == config.KunaiDrop {
		return 1
	}
	p := Progress(float64(age), float64(transition.MergeAnimDuration))
	if p < kunaiFadeStart {
		return 1
	}
	return 1 - (p-kunaiFadeStart)/(1-kunaiFadeStart)
}

// DropOffset drop 标记开启 age 之后苦无下冲的距离
func DropOffset(age time.Duration, distance float64) float64 {
	p := Progress(float64(age), float64(transition.DropExtraDuration))
	return distance * p * p * p
}

// FlashAlpha 背景闪烁的不透明度，开启瞬间最亮
func FlashAlpha(age time.Duration) float64 {
	return 1 - Progress(float64(age), float64(FlashDuration))
}
