package systems

import (
	"log"
	"math"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// PhysicsSystem 处理子弹与僵尸的碰撞
// 子弹只与同行（行索引中）的僵尸检测，按僵尸生成顺序取第一个落在碰撞半径内的目标
type PhysicsSystem struct {
	em        *ecs.EntityManager
	laneIndex *LaneIndexSystem
	combat    *CombatSystem
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - lanes: 行索引，用于查找同行僵尸
//   - combat: 战斗系统，用于结算命中伤害
func NewPhysicsSystem(em *ecs.EntityManager, lanes *LaneIndexSystem, combat *CombatSystem) *PhysicsSystem {
	return &PhysicsSystem{
		em:        em,
		laneIndex: lanes,
		combat:    combat,
	}
}

// checkCircleHit 两点距离是否小于半径
func checkCircleHit(p1, p2 *components.PositionComponent, radius float64) bool {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y) < radius
}

// FindTarget 查找子弹当前命中的僵尸
func (ps *PhysicsSystem) FindTarget(projectileID ecs.EntityID) (ecs.EntityID, bool) {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](ps.em, projectileID)
	if !ok {
		return 0, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, projectileID)
	if !ok {
		return 0, false
	}

	for _, zombieID := range ps.laneIndex.ZombiesInRow(proj.Row) {
		zombiePos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, zombieID)
		if !ok {
			log.Panicf("[PhysicsSystem] ❌ Zombie %d in row %d has no position (index out of sync)", zombieID, proj.Row)
		}
		if checkCircleHit(pos, zombiePos, proj.Radius) {
			return zombieID, true
		}
	}
	return 0, false
}

// ResolveProjectile 结算子弹碰撞
// 命中时对僵尸造成一次伤害并删除子弹，返回 true；每颗子弹最多命中一个僵尸
func (ps *PhysicsSystem) ResolveProjectile(projectileID ecs.EntityID) bool {
	zombieID, hit := ps.FindTarget(projectileID)
	if !hit {
		return false
	}

	proj, _ := ecs.GetComponent[*components.ProjectileComponent](ps.em, projectileID)
	killed := ps.combat.ApplyDamage(zombieID, proj.Damage)
	ps.em.DestroyEntity(projectileID)

	if killed {
		log.Printf("[PhysicsSystem] Projectile %d killed zombie %d", projectileID, zombieID)
	}
	return true
}
