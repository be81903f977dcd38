package systems

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// SunMovementSystem 移动阳光，离开可见垂直范围的阳光被删除
type SunMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewSunMovementSystem 创建阳光移动系统
func NewSunMovementSystem(em *ecs.EntityManager) *SunMovementSystem {
	return &SunMovementSystem{entityManager: em}
}

// Update 更新所有阳光的位置
func (s *SunMovementSystem) Update(deltaTime float64) {
	suns := ecs.GetEntitiesWith3[*components.SunComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range suns {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if pos.Y < config.VisibleMinY || pos.Y > config.VisibleMaxY {
			s.entityManager.DestroyEntity(id)
		}
	}
}
