package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for loading and caching the images and fonts
// referenced by the résumé config (logo, kunai, résumé picture, avatar, font).
//
// Relative paths are resolved against baseDir, normally the directory of the
// config file, so a profile can ship its own assets next to it.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded ebiten loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(filepath.Dir(configPath))
//	img := rm.ImageOrNil(cfg.Global.LogoPath)
//	if img == nil {
//	    // draw a placeholder
//	}
type ResourceManager struct {
	baseDir       string
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: resolved path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for Ebitengine v2 text faces
	fontSources   map[string]*text.GoTextFaceSource
	failed        map[string]error // 加载失败的路径，只记录一次警告
}

// NewResourceManager creates a ResourceManager resolving relative paths against baseDir.
// An empty baseDir means the current working directory.
func NewResourceManager(baseDir string) *ResourceManager {
	return &ResourceManager{
		baseDir:       baseDir,
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		failed:        make(map[string]error),
	}
}

// Resolve returns the file path used for a config-relative resource path.
func (rm *ResourceManager) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || rm.baseDir == "" {
		return path
	}
	return filepath.Join(rm.baseDir, path)
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The resource path from the config (e.g., "assets/logo.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	resolved := rm.Resolve(path)

	if cachedImage, exists := rm.imageCache[resolved]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", resolved, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", resolved, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[resolved] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[rm.Resolve(path)]
}

// ImageOrNil 加载图片，失败时记录一次警告并返回 nil
//
// 图片都是可选的装饰资源：缺失时渲染层绘制占位图形。
func (rm *ResourceManager) ImageOrNil(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	resolved := rm.Resolve(path)
	if _, failed := rm.failed[resolved]; failed {
		return nil
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		rm.failed[resolved] = err
		log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
		return nil
	}
	return img
}

// LoadFont loads a TrueType/OpenType font and caches the face for the given size.
//
// Parameters:
//   - path: The resource path of the font file.
//   - size: The font size in points.
//
// Returns:
//   - A pointer to the cached text.GoTextFace.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	resolved := rm.Resolve(path)
	cacheKey := fmt.Sprintf("%s:%.1f", resolved, size)

	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	// 同一字体文件的不同字号共用一个 source
	source, ok := rm.fontSources[resolved]
	if !ok {
		fontData, err := os.ReadFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", resolved, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", resolved, err)
		}
		rm.fontSources[resolved] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache, or nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", rm.Resolve(path), size)
	return rm.fontFaceCache[cacheKey]
}
