package behavior

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/utils"
)

// handleZombieBehavior 僵尸每帧行为
//
// 状态由当前帧的占用情况决定（电平触发）：
//   - 啃咬点（中心左侧 BiteOffset）所在格子有植物：Eating，原地啃食
//   - 否则：Walking，向左移动 Speed*dt
//
// 可跳跃的僵尸在 Eating 时，如果自身所在格子右侧直到草坪边缘都没有植物，
// 则跳到左边一格（越过挡路的植物），跳跃能力随即消耗
func (s *BehaviorSystem) handleZombieBehavior(entityID ecs.EntityID, deltaTime float64) {
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID)
	if health.IsDead {
		return
	}

	zombie, _ := ecs.GetComponent[*components.ZombieComponent](s.entityManager, entityID)
	position, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

	bite := utils.GridPosFromWorld(position.X-s.config.BiteOffset, position.Y)
	plantID, blocked := s.lawnGridSystem.QueryAt(bite)

	if !blocked {
		if zombie.State == components.ZombieEating {
			log.Printf("[BehaviorSystem] 僵尸 %d 前方已无植物，恢复行走", entityID)
		}
		zombie.State = components.ZombieWalking
		position.X -= zombie.Speed * deltaTime
		return
	}

	if zombie.State != components.ZombieEating {
		log.Printf("[BehaviorSystem] 僵尸 %d 开始啃食植物 %d", entityID, plantID)
	}
	zombie.State = components.ZombieEating

	if zombie.CanJump && s.isOnlyBlockedAhead(position, zombie.Row) {
		s.jumpOver(entityID, zombie, position)
		return
	}

	s.combat.ApplyDamage(plantID, zombie.EatDPS*deltaTime)
}

// isOnlyBlockedAhead 僵尸所在格子右侧（不含自身格子）直到草坪右边缘是否全部为空
func (s *BehaviorSystem) isOnlyBlockedAhead(position *components.PositionComponent, row int) bool {
	own := utils.WorldToTile(position.X, position.Y)
	for col := own.Col + 1; col < config.GridColumns; col++ {
		if s.lawnGridSystem.IsOccupied(col, row) {
			return false
		}
	}
	return true
}

// jumpOver 跳到自身所在格子左边一格的中心
func (s *BehaviorSystem) jumpOver(entityID ecs.EntityID, zombie *components.ZombieComponent, position *components.PositionComponent) {
	own := utils.WorldToTile(position.X, position.Y)
	target := utils.Tile{Col: own.Col - 1, Row: zombie.Row}
	position.X, position.Y = target.ToWorld()

	zombie.CanJump = false
	zombie.State = components.ZombieWalking

	log.Printf("[BehaviorSystem] 僵尸 %d 跳过植物: (%d, %d) -> (%d, %d)", entityID, own.Col, own.Row, target.Col, target.Row)
}
