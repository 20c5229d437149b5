package view

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/neonswitch/pkg/config"
	"github.com/decker502/neonswitch/pkg/transition"
)

// TestLogoPoseAt 测试 Logo 姿态的起止值
func TestLogoPoseAt(t *testing.T) {
	tests := []struct {
		name    string
		variant config.LogoVariant
		age     time.Duration
		want    LogoPose
	}{
		{"pop 开始", config.LogoPop, 0, LogoPose{Scale: 0.2}},
		{"pop 结束", config.LogoPop, LogoPopDuration, LogoPose{Scale: 1, Alpha: 1}},
		{"pop 结束后保持", config.LogoPop, time.Second, LogoPose{Scale: 1, Alpha: 1}},
		{"morph 开始", config.LogoMorph, 0, LogoPose{Scale: 0.6, Rotation: -0.35}},
		{"morph 结束", config.LogoMorph, LogoMorphDuration, LogoPose{Scale: 1, Alpha: 1}},
		{"未知模式按 pop", "spin", LogoPopDuration, LogoPose{Scale: 1, Alpha: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogoPoseAt(tt.age, tt.variant)
			if !almostEqual(got.Scale, tt.want.Scale) ||
				!almostEqual(got.Rotation, tt.want.Rotation) ||
				!almostEqual(got.Alpha, tt.want.Alpha) ||
				math.Abs(got.Skew-tt.want.Skew) > 1e-9 {
				t.Errorf("LogoPoseAt(%v, %s) = %+v, want %+v", tt.age, tt.variant, got, tt.want)
			}
		})
	}
}

// TestKunaiOffset 测试苦无飞入
func TestKunaiOffset(t *testing.T) {
	if got := KunaiOffset(0, 560); got != 560 {
		t.Errorf("offset at start = %v, want 560", got)
	}
	if got := KunaiOffset(transition.MergeAnimDuration, 560); got != 0 {
		t.Errorf("offset at end = %v, want 0", got)
	}

	prev := KunaiOffset(0, 560)
	for age := 50 * ms; age <= transition.MergeAnimDuration; age += 50 * ms {
		cur := KunaiOffset(age, 560)
		if cur > prev {
			t.Fatalf("offset increased at %v: %v > %v", age, cur, prev)
		}
		prev = cur
	}
}

// TestKunaiAlpha 测试两种收尾模式的不透明度
func TestKunaiAlpha(t *testing.T) {
	if got := KunaiAlpha(transition.MergeAnimDuration, config.KunaiDrop); got != 1 {
		t.Errorf("drop alpha at end = %v, want 1", got)
	}
	if got := KunaiAlpha(500*ms, config.KunaiFade); got != 1 {
		t.Errorf("fade alpha mid-flight = %v, want 1", got)
	}
	if got := KunaiAlpha(transition.MergeAnimDuration, config.KunaiFade); !almostEqual(got, 0) {
		t.Errorf("fade alpha at end = %v, want 0", got)
	}
}

// TestDropAndFlash 测试下冲与闪烁
func TestDropAndFlash(t *testing.T) {
	if got := DropOffset(0, 480); got != 0 {
		t.Errorf("drop at start = %v, want 0", got)
	}
	if got := DropOffset(transition.DropExtraDuration, 480); got != 480 {
		t.Errorf("drop at end = %v, want 480", got)
	}
	if got := FlashAlpha(0); got != 1 {
		t.Errorf("flash at start = %v, want 1", got)
	}
	if got := FlashAlpha(FlashDuration); got != 0 {
		t.Errorf("flash at end = %v, want 0", got)
	}
}
