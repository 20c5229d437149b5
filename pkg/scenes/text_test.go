package scenes

import (
	"reflect"
	"testing"
)

// TestTextRenderer_DebugFallback 测试未配置字体时按调试字体等宽折行
func TestTextRenderer_DebugFallback(t *testing.T) {
	r := newTextRenderer(nil, "")

	if got := r.measure("abc", fontSizeNormal); got != 18 {
		t.Errorf("Expected 18px for 3 ASCII glyphs, got %.0f", got)
	}
	if got := r.measure("简历", fontSizeNormal); got != 24 {
		t.Errorf("Expected 24px for 2 wide glyphs, got %.0f", got)
	}
	if got := r.lineHeight(fontSizeTitle); got != debugGlyphHeight {
		t.Errorf("Expected debug line height, got %.0f", got)
	}

	tests := []struct {
		name     string
		lines    []string
		maxWidth float64
		want     []string
	}{
		{name: "不需要折行", lines: []string{"hello"}, maxWidth: 60, want: []string{"hello"}},
		{name: "按列折行", lines: []string{"abcdefgh"}, maxWidth: 24, want: []string{"abcd", "efgh"}},
		{name: "宽字符占两列", lines: []string{"一体两面"}, maxWidth: 24, want: []string{"一体", "两面"}},
		{name: "宽度为 0", lines: []string{"abc"}, maxWidth: 0, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.wrap(tt.lines, fontSizeNormal, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
