package entities

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// NewPeaProjectile 在 (startX, startY) 创建向右飞行的豌豆子弹
func NewPeaProjectile(em *ecs.EntityManager, cfg *config.BalanceConfig, assets AssetLoader, startX, startY float64, row int) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: startX, Y: startY})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VX: cfg.Projectile.Speed})
	ecs.AddComponent(em, entityID, newSprite(assets, AssetKeyPeaProjectile))
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Row:    row,
		Damage: cfg.Projectile.Damage,
		Radius: cfg.Projectile.Radius,
	})
	ecs.AddComponent(em, entityID, &components.BehaviorComponent{Type: components.BehaviorPeaProjectile})

	return entityID
}
