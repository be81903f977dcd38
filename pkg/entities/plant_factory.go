package entities

import (
	"fmt"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// NewPlantEntity 创建植物实体并登记到占用表
// 实体创建和占用登记是一个整体：登记失败时实体会被标记删除并返回错误
//
// 参数:
//   - em: 实体管理器
//   - grid: 占用表
//   - cfg: 数值配置
//   - assets: 资源句柄提供者，可为 nil
//   - plantType: 植物类型
//   - tile: 目标格子
//   - now: 当前游戏时间（秒）
//
// 返回:
//   - ecs.EntityID: 创建的植物实体ID，如果失败返回 0
//   - error: 格子越界、已被占用或植物类型未配置时返回错误
func NewPlantEntity(em *ecs.EntityManager, grid PlantRegistry, cfg *config.BalanceConfig, assets AssetLoader,
	plantType components.PlantType, tile utils.Tile, now float64) (ecs.EntityID, error) {
	stats, ok := cfg.Plant(plantType)
	if !ok {
		return 0, fmt.Errorf("no stats for plant type %v", plantType)
	}
	if !tile.InBounds() {
		return 0, fmt.Errorf("plant %v at (%d, %d): out of bounds", plantType, tile.Col, tile.Row)
	}

	behavior, err := plantBehavior(plantType)
	if err != nil {
		return 0, err
	}

	// 格子中心（世界坐标）
	worldX, worldY := tile.ToWorld()

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: worldX, Y: worldY})
	ecs.AddComponent(em, entityID, newSprite(assets, AssetKeyPlant(plantType)))
	ecs.AddComponent(em, entityID, &components.PlantComponent{
		PlantType: plantType,
		GridRow:   tile.Row,
		GridCol:   tile.Col,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		Label:         plantType.String(),
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
		SpawnedAt:     now,
	})
	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: behavior})

	switch plantType {
	case types.PlantSunflower:
		ecs.AddComponent(em, entityID, &components.TimerComponent{
			Name:       "sun_production",
			TargetTime: stats.FirstProductionDelay,
			Interval:   stats.ProductionInterval,
			Repeating:  true,
		})
	case types.PlantPeashooter:
		ecs.AddComponent(em, entityID, &components.TimerComponent{
			Name:       "attack_cooldown",
			TargetTime: stats.AttackInterval,
			Interval:   stats.AttackInterval,
			Repeating:  true,
		})
	}

	if err := grid.AddPlant(tile.ToGridPos(), entityID); err != nil {
		em.DestroyEntity(entityID)
		return 0, fmt.Errorf("plant %v: %w", plantType, err)
	}

	return entityID, nil
}

// plantBehavior 植物类型 -> 行为类型
func plantBehavior(pt components.PlantType) (components.BehaviorType, error) {
	switch pt {
	case types.PlantSunflower:
		return components.BehaviorSunflower, nil
	case types.PlantPeashooter:
		return components.BehaviorPeashooter, nil
	case types.PlantWallnut:
		return components.BehaviorWallnut, nil
	default:
		return 0, fmt.Errorf("unsupported plant type %v", pt)
	}
}
