package entities

import (
	"fmt"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// NewZombieEntity 在网格坐标 pos 处创建僵尸并登记到行索引
// pos 通常位于草坪右侧之外（X >= GridColumns）；行由 pos.Y 四舍五入得到
func NewZombieEntity(em *ecs.EntityManager, lanes ZombieRegistry, cfg *config.BalanceConfig, assets AssetLoader,
	zombieType types.ZombieType, pos utils.GridPos, now float64) (ecs.EntityID, error) {
	stats, ok := cfg.Zombie(zombieType)
	if !ok {
		return 0, fmt.Errorf("no stats for zombie type %v", zombieType)
	}

	row := pos.Tile().Row
	if row < 0 || row >= config.GridRows {
		return 0, fmt.Errorf("zombie %v: row %d out of range", zombieType, row)
	}

	worldX, worldY := pos.ToWorld()

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: worldX, Y: worldY})
	ecs.AddComponent(em, entityID, newSprite(assets, AssetKeyZombie(zombieType.String())))
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		Label:         zombieType.String(),
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
		SpawnedAt:     now,
	})
	ecs.AddComponent(em, entityID, &components.ZombieComponent{
		ZombieType: zombieType,
		State:      components.ZombieWalking,
		Row:        row,
		Speed:      stats.Speed,
		EatDPS:     stats.EatDPS,
		CanJump:    stats.CanJump,
	})
	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: components.BehaviorZombie})

	if err := lanes.AddZombie(row, entityID); err != nil {
		em.DestroyEntity(entityID)
		return 0, fmt.Errorf("zombie %v: %w", zombieType, err)
	}

	return entityID, nil
}
