// Package sim 组装模拟核心：持有实体管理器和所有系统，按固定顺序推进每一帧
package sim

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/systems"
	"github.com/decker502/pvz-core/pkg/systems/behavior"
	"github.com/decker502/pvz-core/pkg/types"
)

// Simulation 一局游戏的模拟核心
// 单线程，所有方法都必须在同一个 goroutine 中调用（通常是 ebiten 的 Update）
type Simulation struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.BalanceConfig
	seed          int64

	lawnGridSystem        *systems.LawnGridSystem
	laneIndexSystem       *systems.LaneIndexSystem
	combatSystem          *systems.CombatSystem
	physicsSystem         *systems.PhysicsSystem
	plantCardSystem       *systems.PlantCardSystem
	plantPreviewSystem    *systems.PlantPreviewSystem
	sunCollectionSystem   *systems.SunCollectionSystem
	inputSystem           *systems.InputSystem
	zombieSpawnSystem     *systems.ZombieSpawnSystem
	sunSpawnSystem        *systems.SunSpawnSystem
	sunMovementSystem     *systems.SunMovementSystem
	behaviorSystem        *behavior.BehaviorSystem
	levelPhaseSystem      *systems.LevelPhaseSystem
	zombiesWonPhaseSystem *systems.ZombiesWonPhaseSystem

	cards []ecs.EntityID // 按工具栏顺序
}

// New 创建模拟核心，阶段为 PhaseWaitingToStart
// cfg.Rules.Seed 为 0 时使用当前时间作为随机种子
// assets 可为 nil（无界面运行）
func New(cfg *config.BalanceConfig, assets entities.AssetLoader) *Simulation {
	seed := cfg.Rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Sun.Initial)

	s := &Simulation{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		seed:          seed,
	}

	// 索引
	s.lawnGridSystem = systems.NewLawnGridSystem(em)
	s.laneIndexSystem = systems.NewLaneIndexSystem(em, cfg.BiteOffset)

	// 战斗
	s.combatSystem = systems.NewCombatSystem(em, gs, s.lawnGridSystem, s.laneIndexSystem)
	s.physicsSystem = systems.NewPhysicsSystem(em, s.laneIndexSystem, s.combatSystem)
	s.behaviorSystem = behavior.NewBehaviorSystem(em, cfg, assets, s.lawnGridSystem, s.laneIndexSystem,
		s.combatSystem, s.physicsSystem)

	// 种植与经济
	s.plantCardSystem = systems.NewPlantCardSystem(em, gs)
	s.plantPreviewSystem = systems.NewPlantPreviewSystem(em, s.lawnGridSystem, assets)
	s.sunCollectionSystem = systems.NewSunCollectionSystem(em, gs)
	s.inputSystem = systems.NewInputSystem(em, gs, cfg, assets, s.lawnGridSystem,
		s.plantCardSystem, s.plantPreviewSystem, s.sunCollectionSystem)
	s.sunSpawnSystem = systems.NewSunSpawnSystem(em, cfg, assets, rng)
	s.sunMovementSystem = systems.NewSunMovementSystem(em)

	// 生成与胜负
	s.zombieSpawnSystem = systems.NewZombieSpawnSystem(em, gs, cfg, assets, s.laneIndexSystem,
		systems.NewDifficultyEngine(cfg.Spawn), rng)
	s.levelPhaseSystem = systems.NewLevelPhaseSystem(gs, cfg.Rules)
	s.zombiesWonPhaseSystem = systems.NewZombiesWonPhaseSystem(em, gs, cfg.Rules)

	for _, pt := range types.AllPlantTypes {
		stats, ok := cfg.Plant(pt)
		if !ok {
			continue
		}
		s.cards = append(s.cards, entities.NewPlantCardEntity(em, stats, pt, len(s.cards)))
	}

	log.Printf("[Simulation] Session %s created (seed=%d, cards=%d)", gs.SessionID, seed, len(s.cards))
	return s
}

// Seed 实际使用的随机种子
func (s *Simulation) Seed() int64 {
	return s.seed
}

// State 游戏状态（只读使用）
func (s *Simulation) State() *game.GameState {
	return s.gameState
}

// EntityManager 实体管理器（测试和调试工具使用）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Start 进入 PhaseRunning，并生成配置中的预置僵尸
func (s *Simulation) Start() {
	if s.gameState.Phase != game.PhaseWaitingToStart {
		return
	}
	s.gameState.Start()
	s.zombieSpawnSystem.SeedDebugZombies()
}

// Update 推进一帧
func (s *Simulation) Update(deltaTime float64) {
	if !s.gameState.IsRunning() {
		return
	}

	s.gameState.Advance(deltaTime)

	s.plantCardSystem.Update(deltaTime)
	s.zombieSpawnSystem.Update(deltaTime)
	s.sunSpawnSystem.Update(deltaTime)
	s.behaviorSystem.Update(deltaTime)
	s.sunMovementSystem.Update(deltaTime)

	s.zombiesWonPhaseSystem.Update()
	s.levelPhaseSystem.Update()

	s.entityManager.RemoveMarkedEntities()
}

// Click 处理世界坐标的点击（种植或收集阳光）
func (s *Simulation) Click(worldX, worldY float64) bool {
	if !s.gameState.IsRunning() {
		return false
	}
	return s.inputSystem.HandleClick(worldX, worldY)
}

// CollectSun 只尝试收集点击位置的阳光，不影响种植状态
// 用于点击落在工具栏卡片上的情况
func (s *Simulation) CollectSun(worldX, worldY float64) bool {
	if !s.gameState.IsRunning() {
		return false
	}
	return s.sunCollectionSystem.CollectAt(worldX, worldY)
}

// PointerMove 指针移动（世界坐标）
func (s *Simulation) PointerMove(worldX, worldY float64) {
	s.inputSystem.HandlePointerMove(worldX, worldY)
}

// SelectSlot 点击工具栏第 index 张卡片
// 卡片不可用时返回 systems.ErrNotAffordable 或 systems.ErrCardCoolingDown
func (s *Simulation) SelectSlot(index int) error {
	if !s.gameState.IsRunning() {
		return nil
	}
	if index < 0 || index >= len(s.cards) {
		return nil
	}
	return s.inputSystem.HandleCardClick(s.cards[index])
}

// SlotCount 工具栏卡片数量
func (s *Simulation) SlotCount() int {
	return len(s.cards)
}
