package behavior

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// handlePeaProjectileBehavior 子弹：移动，越过可见区域右边缘删除，否则检测同行僵尸碰撞
func (s *BehaviorSystem) handlePeaProjectileBehavior(entityID ecs.EntityID, deltaTime float64) {
	position, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, entityID)

	position.X += velocity.VX * deltaTime
	position.Y += velocity.VY * deltaTime

	if position.X > config.VisibleMaxX {
		s.entityManager.DestroyEntity(entityID)
		return
	}

	s.physics.ResolveProjectile(entityID)
}
