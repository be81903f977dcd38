package scenes

import (
	"image/color"
	"strings"

	"github.com/decker502/pvz-core/pkg/components"
)

// ShapeAssets 以纯色图形代替贴图的资源提供者
// 资源句柄是 color.RGBA，模拟层原样转交，由 GameScene 绘制
type ShapeAssets struct {
	colors map[string]color.RGBA
}

// NewShapeAssets 创建默认配色
func NewShapeAssets() *ShapeAssets {
	return &ShapeAssets{
		colors: map[string]color.RGBA{
			"plant/sunflower":    {R: 250, G: 210, B: 40, A: 255},
			"plant/peashooter":   {R: 40, G: 160, B: 40, A: 255},
			"plant/wallnut":      {R: 150, G: 100, B: 50, A: 255},
			"zombie/basic":       {R: 120, G: 130, B: 140, A: 255},
			"zombie/conehead":    {R: 230, G: 130, B: 40, A: 255},
			"zombie/polevaulter": {R: 170, G: 60, B: 170, A: 255},
			"projectile/pea":     {R: 120, G: 230, B: 80, A: 255},
			"sun":                {R: 255, G: 240, B: 90, A: 230},
		},
	}
}

// Asset 实现 entities.AssetLoader
func (a *ShapeAssets) Asset(key string) components.AssetHandle {
	if c, ok := a.colors[key]; ok {
		return c
	}
	if strings.HasPrefix(key, "zombie/") {
		return a.colors["zombie/basic"]
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}

// colorOf 从资源句柄取颜色，句柄不是颜色时返回 fallback
func colorOf(handle components.AssetHandle, fallback color.RGBA) color.RGBA {
	if c, ok := handle.(color.RGBA); ok {
		return c
	}
	return fallback
}
