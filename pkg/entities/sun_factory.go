package entities

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// NewSunEntity 创建阳光实体
// 向日葵生产的阳光向上漂浮，天降阳光向下坠落
func NewSunEntity(em *ecs.EntityManager, cfg *config.BalanceConfig, assets AssetLoader, source components.SunSource, x, y float64) ecs.EntityID {
	vy := -cfg.Sun.RiseSpeed
	if source == components.SunFromSky {
		vy = cfg.Sun.FallSpeed
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{VY: vy})
	ecs.AddComponent(em, entityID, newSprite(assets, AssetKeySun))
	ecs.AddComponent(em, entityID, &components.SunComponent{
		Source: source,
		Value:  cfg.Sun.Value,
	})
	ecs.AddComponent(em, entityID, &components.ClickableComponent{
		Radius:    cfg.Sun.CollectRadius,
		IsEnabled: true,
	})

	return entityID
}
