package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/utils"
)

// SunSpawnSystem 管理天降阳光的定时生成
// 阳光在随机列、草坪上方一格的位置生成，向下坠落
type SunSpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.BalanceConfig
	assets        entities.AssetLoader
	rng           *rand.Rand
	spawnTimer    float64 // 当前计时器
	spawnInterval float64 // 生成间隔(秒)
	enabled       bool
}

// NewSunSpawnSystem 创建一个新的阳光生成系统
func NewSunSpawnSystem(em *ecs.EntityManager, cfg *config.BalanceConfig, assets entities.AssetLoader, rng *rand.Rand) *SunSpawnSystem {
	log.Printf("[SunSpawnSystem] Initialized with interval=%.1fs, enabled=%v", cfg.Sun.SkyInterval, cfg.Sun.SkyEnabled)
	return &SunSpawnSystem{
		entityManager: em,
		config:        cfg,
		assets:        assets,
		rng:           rng,
		spawnInterval: cfg.Sun.SkyInterval,
		enabled:       cfg.Sun.SkyEnabled,
	}
}

// SetEnabled 启用/禁用天降阳光
func (s *SunSpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.spawnTimer = 0
}

// Update 更新阳光生成计时器
func (s *SunSpawnSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	s.spawnTimer += deltaTime
	if s.spawnTimer < s.spawnInterval {
		return
	}
	s.spawnTimer = 0

	col := s.rng.Intn(config.GridColumns)
	x, y := utils.GridPos{X: float64(col), Y: -1}.ToWorld()

	sunID := entities.NewSunEntity(s.entityManager, s.config, s.assets, components.SunFromSky, x, y)
	log.Printf("[SunSpawnSystem] Sky sun %d spawned at column %d (%.1f, %.1f)", sunID, col, x, y)
}
