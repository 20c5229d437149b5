package config

import "testing"

// TestAnimationModes_Normalize 测试未知值降级
func TestAnimationModes_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input AnimationModes
		want  AnimationModes
	}{
		{name: "合法值保持不变", input: AnimationModes{Logo: LogoMorph, Kunai: KunaiDrop}, want: AnimationModes{Logo: LogoMorph, Kunai: KunaiDrop}},
		{name: "缺失值回退默认", input: AnimationModes{}, want: AnimationModes{Logo: LogoPop, Kunai: KunaiFade}},
		{name: "未知值回退默认", input: AnimationModes{Logo: "spin", Kunai: "explode"}, want: AnimationModes{Logo: LogoPop, Kunai: KunaiFade}},
		{name: "大小写与空白", input: AnimationModes{Logo: " Morph", Kunai: "DROP "}, want: AnimationModes{Logo: LogoMorph, Kunai: KunaiDrop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestSuggestVariant 测试拼写提示
func TestSuggestVariant(t *testing.T) {
	candidates := []string{"pop", "morph"}

	tests := []struct {
		value   string
		want    string
		wantHit bool
	}{
		{value: "morhp", want: "morph", wantHit: true},
		{value: "popp", want: "pop", wantHit: true},
		{value: "morph", wantHit: false}, // 完全匹配不需要提示
		{value: "kaleidoscope", wantHit: false},
		{value: "", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := SuggestVariant(tt.value, candidates)
			if ok != tt.wantHit {
				t.Fatalf("SuggestVariant(%q) hit = %v, want %v", tt.value, ok, tt.wantHit)
			}
			if ok && got != tt.want {
				t.Errorf("SuggestVariant(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
