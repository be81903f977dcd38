package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/utils"
)

var (
	// ErrNotAffordable 阳光不足
	ErrNotAffordable = errors.New("not enough sun")
	// ErrCardCoolingDown 卡片冷却中
	ErrCardCoolingDown = errors.New("card is cooling down")
)

// InputSystem 处理已转换为世界坐标的输入事件
// 两次点击种植流程：
//  1. 点击可用卡片 -> 卡片进入 Armed，创建跟随指针的预览
//  2. 再次点击任意位置 -> 目标格子为空则扣阳光、种植、重置冷却；否则什么也不做
//     两种情况都会移除预览并回到 Idle
//
// 没有卡片处于 Armed 时，点击用于收集阳光
type InputSystem struct {
	entityManager       *ecs.EntityManager
	gameState           *game.GameState
	config              *config.BalanceConfig
	assets              entities.AssetLoader
	lawnGridSystem      *LawnGridSystem
	plantCardSystem     *PlantCardSystem
	plantPreviewSystem  *PlantPreviewSystem
	sunCollectionSystem *SunCollectionSystem

	armedCard ecs.EntityID // 当前 Armed 的卡片，0 表示没有

	lastPointerX, lastPointerY float64
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.BalanceConfig, assets entities.AssetLoader,
	lgs *LawnGridSystem, pcs *PlantCardSystem, pps *PlantPreviewSystem, scs *SunCollectionSystem) *InputSystem {
	return &InputSystem{
		entityManager:       em,
		gameState:           gs,
		config:              cfg,
		assets:              assets,
		lawnGridSystem:      lgs,
		plantCardSystem:     pcs,
		plantPreviewSystem:  pps,
		sunCollectionSystem: scs,
	}
}

// ArmedCard 当前 Armed 的卡片
func (s *InputSystem) ArmedCard() (ecs.EntityID, bool) {
	return s.armedCard, s.armedCard != 0
}

// HandleCardClick 处理工具栏卡片点击
// 冷却未结束返回 ErrCardCoolingDown，阳光不足返回 ErrNotAffordable
// 已有卡片 Armed 时，这次点击视为第二次点击（落在草坪外，种植失败）
func (s *InputSystem) HandleCardClick(cardEntity ecs.EntityID) error {
	if s.armedCard != 0 {
		log.Printf("[InputSystem] Second click on toolbar, placement cancelled")
		s.disarm()
		return nil
	}

	card, ok := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, cardEntity)
	if !ok {
		return fmt.Errorf("entity %d is not a plant card", cardEntity)
	}

	// 按当前的冷却和阳光判断，IsAvailable 是上一帧的显示状态，收集阳光后要到下一帧才刷新
	if !card.CooldownFinished() {
		return fmt.Errorf("%s card: %w (%.1fs left)", card.PlantType, ErrCardCoolingDown, card.CurrentCooldown)
	}
	if sun := s.gameState.GetSun(); sun < card.SunCost {
		return fmt.Errorf("%s card: %w (have %d, need %d)", card.PlantType, ErrNotAffordable, sun, card.SunCost)
	}

	card.State = components.CardArmed
	s.armedCard = cardEntity
	s.gameState.EnterPlantingMode(card.PlantType)
	s.plantPreviewSystem.Show(card.PlantType, cardEntity, s.lastPointerX, s.lastPointerY)

	log.Printf("[InputSystem] Card %d (%s) armed", cardEntity, card.PlantType)
	return nil
}

// HandleClick 处理草坪区域（世界坐标）的点击
// 返回是否产生了效果（种下植物或收集了阳光）
func (s *InputSystem) HandleClick(worldX, worldY float64) bool {
	s.lastPointerX, s.lastPointerY = worldX, worldY

	if s.armedCard == 0 {
		return s.sunCollectionSystem.CollectAt(worldX, worldY)
	}

	defer s.disarm()
	return s.tryPlace(worldX, worldY)
}

// HandlePointerMove 指针移动，只用于预览跟随
func (s *InputSystem) HandlePointerMove(worldX, worldY float64) {
	s.lastPointerX, s.lastPointerY = worldX, worldY
	s.plantPreviewSystem.Follow(worldX, worldY)
}

// tryPlace 在点击位置尝试种植
func (s *InputSystem) tryPlace(worldX, worldY float64) bool {
	card, ok := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, s.armedCard)
	if !ok {
		log.Printf("[InputSystem] ❌ Armed card %d no longer exists", s.armedCard)
		return false
	}

	tile := utils.WorldToTile(worldX, worldY)
	if !tile.InBounds() {
		log.Printf("[InputSystem] Click (%.1f, %.1f) outside lawn, placement cancelled", worldX, worldY)
		return false
	}
	if s.lawnGridSystem.IsOccupied(tile.Col, tile.Row) {
		log.Printf("[InputSystem] Tile (%d, %d) occupied, placement cancelled", tile.Col, tile.Row)
		return false
	}
	if !s.gameState.SpendSun(card.SunCost) {
		log.Printf("[InputSystem] Not enough sun for %s (have %d, need %d)", card.PlantType, s.gameState.GetSun(), card.SunCost)
		return false
	}

	plantID, err := entities.NewPlantEntity(s.entityManager, s.lawnGridSystem, s.config, s.assets,
		card.PlantType, tile, s.gameState.Elapsed)
	if err != nil {
		// 上面已检查过占用，走到这里说明占用表不一致
		log.Printf("[InputSystem] ❌ Failed to place %s at (%d, %d): %v", card.PlantType, tile.Col, tile.Row, err)
		s.gameState.AddSun(card.SunCost)
		return false
	}

	s.plantCardSystem.TriggerCooldown(s.armedCard)
	s.gameState.PlantsPlaced++

	log.Printf("[InputSystem] Planted %s (entity %d) at (%d, %d), sun left: %d",
		card.PlantType, plantID, tile.Col, tile.Row, s.gameState.GetSun())
	return true
}

// disarm 回到 Idle 并移除预览
func (s *InputSystem) disarm() {
	if card, ok := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, s.armedCard); ok {
		card.State = components.CardIdle
	}
	s.armedCard = 0
	s.gameState.ExitPlantingMode()
	s.plantPreviewSystem.Hide()
}
