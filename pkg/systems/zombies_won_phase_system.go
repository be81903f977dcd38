package systems

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/game"
)

// ZombiesWonPhaseSystem 失败判定
// 任意存活僵尸的中心越过 草坪左边界 - LoseMargin 时结束游戏（失败）
type ZombiesWonPhaseSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	boundaryX     float64
}

// NewZombiesWonPhaseSystem 创建失败判定系统
func NewZombiesWonPhaseSystem(em *ecs.EntityManager, gs *game.GameState, rules config.RulesConfig) *ZombiesWonPhaseSystem {
	return &ZombiesWonPhaseSystem{
		entityManager: em,
		gameState:     gs,
		boundaryX:     config.GridWorldStartX - rules.LoseMargin,
	}
}

// BoundaryX 失败边界（世界坐标）
func (s *ZombiesWonPhaseSystem) BoundaryX() float64 {
	return s.boundaryX
}

// Update 检查是否有僵尸越过失败边界
func (s *ZombiesWonPhaseSystem) Update() {
	if !s.gameState.IsRunning() {
		return
	}

	zombies := ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent](s.entityManager)
	for _, id := range zombies {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if health.IsDead {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if pos.X < s.boundaryX {
			log.Printf("[ZombiesWonPhaseSystem] Zombie %d reached the house (x=%.1f < %.1f)", id, pos.X, s.boundaryX)
			s.gameState.End(false)
			return
		}
	}
}
