package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"profiles/doloris.yaml": {Data: []byte("global:\n  initialMode: normal\n")},
		"profiles/mortis.yaml":  {Data: []byte("global:\n  initialMode: neon\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false for nil FS")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/profiles/doloris.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/profiles/doloris.yaml"},
		{name: "带 ./ 前缀", path: "./data/profiles/mortis.yaml"},
		{name: "未知前缀", path: "assets/logo.png", wantErr: true},
		{name: "文件不存在", path: "data/profiles/anon.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Errorf("Expected content for %s", tt.path)
			}
		})
	}
}

// TestExistsAndGlob 测试存在性检查与通配匹配
func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/profiles/doloris.yaml") {
		t.Error("Expected doloris.yaml to exist")
	}
	if Exists("data/profiles/missing.yaml") {
		t.Error("Expected missing.yaml to not exist")
	}

	matches, err := Glob("data/profiles/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 profiles, got %d: %v", len(matches), matches)
	}
	if matches[0] != "data/profiles/doloris.yaml" {
		t.Errorf("Expected data/ prefix on matches, got %v", matches)
	}
}
