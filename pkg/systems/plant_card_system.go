package systems

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/game"
)

// PlantCardSystem 负责更新植物卡片（工具栏槽位）的状态
// 冷却时间每帧递减（空闲和选中状态都递减）；
// 可用性 = 冷却结束 且 阳光 >= 价格，只在阳光变化或冷却状态变化时重新计算
type PlantCardSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	lastSun int  // 上次重算时的阳光数
	primed  bool // 是否已做过首次计算

	// RecomputeCount 可用性重算次数（用于观察是否存在多余的刷新）
	RecomputeCount int
}

// NewPlantCardSystem 创建一个新的 PlantCardSystem 实例
func NewPlantCardSystem(em *ecs.EntityManager, gs *game.GameState) *PlantCardSystem {
	return &PlantCardSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新所有植物卡片的冷却和可用性
func (s *PlantCardSystem) Update(deltaTime float64) {
	currentSun := s.gameState.GetSun()
	sunChanged := !s.primed || currentSun != s.lastSun

	for _, entityID := range ecs.GetEntitiesWith1[*components.PlantCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, entityID)

		cooldownJustFinished := false
		if card.CurrentCooldown > 0 {
			card.CurrentCooldown -= deltaTime
			if card.CurrentCooldown <= 0 {
				card.CurrentCooldown = 0
				cooldownJustFinished = true
			}
		}

		if sunChanged || cooldownJustFinished {
			s.refreshAvailability(entityID, card, currentSun)
		}
	}

	s.lastSun = currentSun
	s.primed = true
}

// refreshAvailability 重新计算卡片可用性
func (s *PlantCardSystem) refreshAvailability(entityID ecs.EntityID, card *components.PlantCardComponent, currentSun int) {
	s.RecomputeCount++

	available := card.CooldownFinished() && currentSun >= card.SunCost
	if available != card.IsAvailable {
		log.Printf("[PlantCardSystem] Card %d (%s) available: %v -> %v (sun=%d, cost=%d, cooldown=%.1f)",
			entityID, card.PlantType, card.IsAvailable, available, currentSun, card.SunCost, card.CurrentCooldown)
	}
	card.IsAvailable = available
}

// TriggerCooldown 种植成功后重置卡片冷却，卡片立即变为不可用
func (s *PlantCardSystem) TriggerCooldown(cardEntity ecs.EntityID) {
	card, ok := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, cardEntity)
	if !ok {
		log.Printf("[PlantCardSystem] ❌ TriggerCooldown on entity %d without PlantCardComponent", cardEntity)
		return
	}
	card.CurrentCooldown = card.CooldownTime
	if card.CurrentCooldown > 0 {
		card.IsAvailable = false
	}
}

// CardAt 按工具栏序号查找卡片
func (s *PlantCardSystem) CardAt(index int) (ecs.EntityID, bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.PlantCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, entityID)
		if card.Index == index {
			return entityID, true
		}
	}
	return 0, false
}
