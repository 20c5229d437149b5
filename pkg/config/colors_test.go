package config

import (
	"image/color"
	"testing"
)

// TestParseHexColor 测试 CSS 颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{input: "#ffffff", want: color.RGBA{255, 255, 255, 255}},
		{input: "#ffe100ff", want: color.RGBA{255, 225, 0, 255}},
		{input: "#5ceb8280", want: color.RGBA{92, 235, 130, 128}},
		{input: "0a0a0a", want: color.RGBA{10, 10, 10, 255}},
		{input: "#fff", want: color.RGBA{255, 255, 255, 255}},
		{input: "#f008", want: color.RGBA{255, 0, 0, 136}},
		{input: "#f00z", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
		{input: "#ffffffzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestBlendColor 测试端点
func TestBlendColor(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	if got := BlendColor(black, white, 0); got != black {
		t.Errorf("BlendColor(t=0) = %v, want %v", got, black)
	}
	if got := BlendColor(black, white, 1); got != white {
		t.Errorf("BlendColor(t=1) = %v, want %v", got, white)
	}
	mid := BlendColor(black, white, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("BlendColor(t=0.5) should be between endpoints, got %v", mid)
	}
}

// TestParseHexColorOr 测试解析失败时使用回退色
func TestParseHexColorOr(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}

	if got := ParseHexColorOr("#0a0a0a", fallback); got != (color.RGBA{10, 10, 10, 255}) {
		t.Errorf("ParseHexColorOr(valid) = %v", got)
	}
	if got := ParseHexColorOr("not-a-color", fallback); got != fallback {
		t.Errorf("ParseHexColorOr(invalid) = %v, want fallback %v", got, fallback)
	}
}
