package entities

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/utils"
)

// AssetLoader 按资源键提供已加载的视觉资源句柄
// 工厂只负责把句柄原样放进 SpriteComponent，不读取文件
type AssetLoader interface {
	Asset(key string) components.AssetHandle
}

// PlantRegistry 植物占用表（由 systems.LawnGridSystem 实现）
type PlantRegistry interface {
	AddPlant(pos utils.GridPos, plantEntity ecs.EntityID) error
	QueryAt(pos utils.GridPos) (ecs.EntityID, bool)
}

// ZombieRegistry 每行僵尸索引（由 systems.LaneIndexSystem 实现）
type ZombieRegistry interface {
	AddZombie(row int, zombieID ecs.EntityID) error
}

// 资源键
const (
	AssetKeyPeaProjectile = "projectile/pea"
	AssetKeySun           = "sun"
)

// AssetKeyPlant 植物资源键
func AssetKeyPlant(pt components.PlantType) string {
	return "plant/" + pt.String()
}

// AssetKeyZombie 僵尸资源键
func AssetKeyZombie(name string) string {
	return "zombie/" + name
}

// newSprite 构造精灵组件，assets 为 nil 时句柄为空（渲染层使用占位图形）
func newSprite(assets AssetLoader, key string) *components.SpriteComponent {
	sprite := &components.SpriteComponent{Key: key}
	if assets != nil {
		sprite.Asset = assets.Asset(key)
	}
	return sprite
}
