package entities

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// NewPlantCardEntity 创建工具栏卡片实体
// 开局时冷却已结束，可用性由 PlantCardSystem 在第一帧计算
func NewPlantCardEntity(em *ecs.EntityManager, stats config.PlantStats, plantType components.PlantType, index int) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PlantCardComponent{
		Index:        index,
		PlantType:    plantType,
		SunCost:      stats.Cost,
		CooldownTime: stats.Cooldown,
		State:        components.CardIdle,
	})

	return entityID
}
