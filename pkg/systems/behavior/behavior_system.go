package behavior

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/systems"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// BehaviorSystem 处理实体的行为逻辑
// 根据实体的 BehaviorComponent 类型执行相应的行为（向日葵生产阳光、豌豆射手攻击、僵尸行走/啃食、子弹飞行）
//
// 每帧处理顺序固定：植物 -> 僵尸 -> 子弹
// 每一阶段开始时重新查询实体，前一阶段的死亡/创建对后一阶段立即可见
type BehaviorSystem struct {
	entityManager  *ecs.EntityManager
	config         *config.BalanceConfig
	assets         entities.AssetLoader
	lawnGridSystem *systems.LawnGridSystem
	laneIndex      *systems.LaneIndexSystem
	combat         *systems.CombatSystem
	physics        *systems.PhysicsSystem

	logFrameCounter int // 日志输出计数器（避免全局变量）
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: 数值配置
//   - assets: 资源句柄提供者（可为 nil）
//   - lgs: 占用表（僵尸判断脚下是否有植物、跳跃前扫描）
//   - lanes: 行索引（豌豆射手判断本行是否有僵尸）
//   - combat: 战斗系统（啃食伤害）
//   - physics: 物理系统（子弹命中）
func NewBehaviorSystem(em *ecs.EntityManager, cfg *config.BalanceConfig, assets entities.AssetLoader,
	lgs *systems.LawnGridSystem, lanes *systems.LaneIndexSystem, combat *systems.CombatSystem,
	physics *systems.PhysicsSystem) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager:  em,
		config:         cfg,
		assets:         assets,
		lawnGridSystem: lgs,
		laneIndex:      lanes,
		combat:         combat,
		physics:        physics,
	}
}

// Update 更新所有拥有行为组件的实体
func (s *BehaviorSystem) Update(deltaTime float64) {
	plantEntityList := s.queryPlants()

	s.logFrameCounter++
	if s.logFrameCounter%LogOutputFrameInterval == 1 {
		log.Printf("[BehaviorSystem] 植物: %d, 僵尸: %d, 子弹: %d",
			len(plantEntityList), s.laneIndex.TotalZombies(), len(s.queryProjectiles()))
	}

	// 遍历所有植物实体，根据行为类型分发处理
	for _, entityID := range plantEntityList {
		behaviorComp, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, entityID)

		switch behaviorComp.Type {
		case components.BehaviorSunflower:
			s.handleSunflowerBehavior(entityID, deltaTime)
		case components.BehaviorPeashooter:
			s.handlePeashooterBehavior(entityID, deltaTime)
		case components.BehaviorWallnut:
			// 纯防御：只通过 HealthComponent 承受伤害
		default:
			log.Printf("[BehaviorSystem] ⚠️ 植物实体 %d 有未知行为类型: %v", entityID, behaviorComp.Type)
		}
	}

	// 僵尸（在植物之后查询，包含本帧新生成的僵尸）
	for _, entityID := range s.queryZombies() {
		s.handleZombieBehavior(entityID, deltaTime)
	}

	// 子弹（包含本帧植物刚发射的子弹）
	for _, entityID := range s.queryProjectiles() {
		s.handlePeaProjectileBehavior(entityID, deltaTime)
	}
}

// queryPlants 查询所有带行为的植物
func (s *BehaviorSystem) queryPlants() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.PlantComponent, *components.BehaviorComponent](s.entityManager)
}

// queryZombies 查询所有僵尸
func (s *BehaviorSystem) queryZombies() []ecs.EntityID {
	return ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent](s.entityManager)
}

// queryProjectiles 查询所有子弹
func (s *BehaviorSystem) queryProjectiles() []ecs.EntityID {
	return ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
}
