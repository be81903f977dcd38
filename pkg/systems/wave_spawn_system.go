package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// ZombieSpawnSystem 无尽模式僵尸生成调度
//   - 开局 WarmUp 秒内不生成
//   - 计时器到期时，从已解锁的僵尸类型中均匀随机选一种，随机选一行，
//     在草坪右侧之外的 SpawnColumn 处生成
//   - 每次生成后按 DifficultyEngine 缩短下一次间隔
type ZombieSpawnSystem struct {
	entityManager    *ecs.EntityManager
	gameState        *game.GameState
	config           *config.BalanceConfig
	assets           entities.AssetLoader
	laneIndexSystem  *LaneIndexSystem
	difficultyEngine *DifficultyEngine
	rng              *rand.Rand

	timer    float64 // 距离下次生成的累计时间
	interval float64 // 当前生成间隔

	// SpawnedCount 本局已生成的僵尸数量（不含调试预置）
	SpawnedCount int
}

// NewZombieSpawnSystem 创建僵尸生成系统
func NewZombieSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.BalanceConfig, assets entities.AssetLoader,
	lanes *LaneIndexSystem, de *DifficultyEngine, rng *rand.Rand) *ZombieSpawnSystem {
	return &ZombieSpawnSystem{
		entityManager:    em,
		gameState:        gs,
		config:           cfg,
		assets:           assets,
		laneIndexSystem:  lanes,
		difficultyEngine: de,
		rng:              rng,
		interval:         cfg.Spawn.InitialInterval,
	}
}

// Interval 当前生成间隔
func (s *ZombieSpawnSystem) Interval() float64 {
	return s.interval
}

// Update 推进生成计时器
func (s *ZombieSpawnSystem) Update(deltaTime float64) {
	if s.gameState.Elapsed < s.config.Spawn.WarmUp {
		return
	}

	s.timer += deltaTime
	if s.timer < s.interval {
		return
	}
	// 保留超出的部分，生成时刻不随帧长漂移
	s.timer -= s.interval

	unlocked := s.config.UnlockedZombies(s.gameState.Elapsed)
	if len(unlocked) == 0 {
		log.Printf("[ZombieSpawnSystem] No zombie type unlocked at %.1fs", s.gameState.Elapsed)
		return
	}

	zombieType := unlocked[s.rng.Intn(len(unlocked))]
	row := s.rng.Intn(config.GridRows)

	if _, err := s.Spawn(zombieType, utils.GridPos{X: s.config.Spawn.SpawnColumn, Y: float64(row)}); err != nil {
		log.Printf("[ZombieSpawnSystem] ❌ Spawn failed: %v", err)
		return
	}
	s.SpawnedCount++

	s.interval = s.difficultyEngine.SpawnInterval(s.gameState.Elapsed)
	log.Printf("[ZombieSpawnSystem] Spawned %s in row %d at %.1fs, next in %.2fs",
		zombieType, row, s.gameState.Elapsed, s.interval)
}

// Spawn 在网格坐标处生成指定类型僵尸
func (s *ZombieSpawnSystem) Spawn(zombieType types.ZombieType, pos utils.GridPos) (ecs.EntityID, error) {
	return entities.NewZombieEntity(s.entityManager, s.laneIndexSystem, s.config, s.assets,
		zombieType, pos, s.gameState.Elapsed)
}

// SeedDebugZombies 生成配置中的开局预置僵尸
// 返回成功生成的数量
func (s *ZombieSpawnSystem) SeedDebugZombies() int {
	seeded := 0
	for _, dz := range s.config.DebugZombies {
		zombieType, err := types.ParseZombieType(dz.Type)
		if err != nil {
			log.Printf("[ZombieSpawnSystem] ❌ Debug zombie: %v", err)
			continue
		}
		if _, err := s.Spawn(zombieType, utils.NewGridPos(dz.Col, dz.Row)); err != nil {
			log.Printf("[ZombieSpawnSystem] ❌ Debug zombie at (%d, %d): %v", dz.Col, dz.Row, err)
			continue
		}
		seeded++
	}
	if seeded > 0 {
		log.Printf("[ZombieSpawnSystem] Seeded %d debug zombies", seeded)
	}
	return seeded
}
