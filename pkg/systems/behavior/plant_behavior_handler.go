package behavior

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
)

// handleSunflowerBehavior 向日葵：生产计时器到期时在自身位置生成上浮的阳光
func (s *BehaviorSystem) handleSunflowerBehavior(entityID ecs.EntityID, deltaTime float64) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if !timer.Tick(deltaTime) {
		return
	}

	position, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	sunID := entities.NewSunEntity(s.entityManager, s.config, s.assets, components.SunFromPlant, position.X, position.Y)
	log.Printf("[BehaviorSystem] 向日葵 %d 生产阳光 %d at (%.1f, %.1f)", entityID, sunID, position.X, position.Y)
}

// handlePeashooterBehavior 豌豆射手：攻击冷却到期时，本行有草坪内的僵尸才发射子弹
func (s *BehaviorSystem) handlePeashooterBehavior(entityID ecs.EntityID, deltaTime float64) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if !timer.Tick(deltaTime) {
		return
	}

	plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, entityID)
	if s.laneIndex.IsRowClear(plant.GridRow) {
		return
	}

	position, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	entities.NewPeaProjectile(s.entityManager, s.config, s.assets, position.X, position.Y, plant.GridRow)
}
