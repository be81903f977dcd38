package systems

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/utils"
)

// PlantPreviewSystem 管理跟随指针的种植预览
// 预览实体只在卡片处于 Armed 状态时存在；同一时间最多一个
type PlantPreviewSystem struct {
	entityManager  *ecs.EntityManager
	lawnGridSystem *LawnGridSystem
	assets         entities.AssetLoader
	previewEntity  ecs.EntityID
}

// NewPlantPreviewSystem 创建种植预览系统
func NewPlantPreviewSystem(em *ecs.EntityManager, lgs *LawnGridSystem, assets entities.AssetLoader) *PlantPreviewSystem {
	return &PlantPreviewSystem{
		entityManager:  em,
		lawnGridSystem: lgs,
		assets:         assets,
	}
}

// Show 创建预览（已有预览时先移除）
func (s *PlantPreviewSystem) Show(plantType components.PlantType, card ecs.EntityID, worldX, worldY float64) ecs.EntityID {
	s.Hide()
	s.previewEntity = entities.NewPlantPreviewEntity(s.entityManager, s.assets, plantType, card, worldX, worldY)
	s.Follow(worldX, worldY)
	return s.previewEntity
}

// Follow 预览跟随指针，并记录指针所在格子是否可以种植
func (s *PlantPreviewSystem) Follow(worldX, worldY float64) {
	if s.previewEntity == 0 {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.previewEntity)
	if !ok {
		return
	}
	preview, _ := ecs.GetComponent[*components.PlantPreviewComponent](s.entityManager, s.previewEntity)

	pos.X, pos.Y = worldX, worldY

	tile := utils.WorldToTile(worldX, worldY)
	preview.TargetCol, preview.TargetRow = tile.Col, tile.Row
	preview.TargetValid = tile.InBounds() && !s.lawnGridSystem.IsOccupied(tile.Col, tile.Row)
}

// Hide 移除预览
func (s *PlantPreviewSystem) Hide() {
	if s.previewEntity == 0 {
		return
	}
	s.entityManager.DestroyEntity(s.previewEntity)
	s.previewEntity = 0
}

// Active 当前预览实体
func (s *PlantPreviewSystem) Active() (ecs.EntityID, bool) {
	return s.previewEntity, s.previewEntity != 0
}
