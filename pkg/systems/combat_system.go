package systems

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/utils"
)

// CombatSystem 处理伤害结算和死亡
//
// 死亡分两步：
//  1. 逻辑死亡：生命值 <= 0 时立即标记 IsDead，并立刻从占用表/行索引中移除
//  2. 物理删除：调用 EntityManager.DestroyEntity，实体在帧末 RemoveMarkedEntities 时才被清理
//
// 同一帧内后续系统读取索引时看到的已经是移除后的状态，而实体组件仍可读取
type CombatSystem struct {
	entityManager  *ecs.EntityManager
	gameState      *game.GameState
	lawnGridSystem *LawnGridSystem
	laneIndex      *LaneIndexSystem
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, lgs *LawnGridSystem, lanes *LaneIndexSystem) *CombatSystem {
	return &CombatSystem{
		entityManager:  em,
		gameState:      gs,
		lawnGridSystem: lgs,
		laneIndex:      lanes,
	}
}

// ApplyDamage 对实体造成伤害
// 返回 true 表示这次伤害使实体死亡；已死亡的实体继续扣血但不会再次触发死亡
func (s *CombatSystem) ApplyDamage(target ecs.EntityID, amount float64) bool {
	if amount <= 0 {
		return false
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok {
		log.Printf("[CombatSystem] ❌ ApplyDamage on entity %d without HealthComponent", target)
		return false
	}

	health.CurrentHealth -= amount
	if health.IsDead || health.CurrentHealth > 0 {
		return false
	}

	s.kill(target, health)
	return true
}

// IsDead 检查实体是否已逻辑死亡（或已不存在）
func (s *CombatSystem) IsDead(id ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return true
	}
	return health.IsDead
}

// kill 标记死亡：先从索引中移除，再延迟删除实体
func (s *CombatSystem) kill(id ecs.EntityID, health *components.HealthComponent) {
	health.IsDead = true

	if plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id); ok {
		pos := utils.NewGridPos(plant.GridCol, plant.GridRow)
		if err := s.lawnGridSystem.ReleasePlant(pos, id); err != nil {
			log.Printf("[CombatSystem] ❌ Failed to release cell for plant %d: %v", id, err)
		}
		log.Printf("[CombatSystem] Plant %d (%s) destroyed at (%d, %d)", id, health.Label, plant.GridCol, plant.GridRow)
	}

	if zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id); ok {
		if err := s.laneIndex.RemoveZombie(zombie.Row, id); err != nil {
			log.Printf("[CombatSystem] ❌ Failed to remove zombie %d from row index: %v", id, err)
		}
		s.gameState.IncrementZombiesKilled()
		log.Printf("[CombatSystem] Zombie %d (%s) killed in row %d (total killed: %d)",
			id, health.Label, zombie.Row, s.gameState.ZombiesKilled)
	}

	s.entityManager.DestroyEntity(id)
}
