package entities

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// NewPlantPreviewEntity 创建跟随指针的种植预览实体
func NewPlantPreviewEntity(em *ecs.EntityManager, assets AssetLoader, plantType components.PlantType, card ecs.EntityID, x, y float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, newSprite(assets, AssetKeyPlant(plantType)))
	ecs.AddComponent(em, entityID, &components.PlantPreviewComponent{
		PlantType:  plantType,
		CardEntity: card,
	})

	return entityID
}
