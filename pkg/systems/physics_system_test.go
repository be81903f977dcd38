package systems

import (
	"testing"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
)

func newTestProjectile(f *combatFixture, x, y float64, row int) ecs.EntityID {
	id := f.em.CreateEntity()
	ecs.AddComponent(f.em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(f.em, id, &components.ProjectileComponent{Row: row, Damage: 20, Radius: 25})
	return id
}

func zombiePos(f *combatFixture, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	return pos
}

func zombieHealth(f *combatFixture, id ecs.EntityID) float64 {
	h, _ := ecs.GetComponent[*components.HealthComponent](f.em, id)
	return h.CurrentHealth
}

// 子弹从 x=100 以 50/s 飞向 x=250 的僵尸：1 秒时距离 100 未命中，进入半径后命中一次
func TestPhysicsSystem_MissThenHit(t *testing.T) {
	f := newCombatFixture()
	physics := NewPhysicsSystem(f.em, f.lanes, f.combat)

	zombie := f.newZombie(t, 2, 100)
	zp := zombiePos(f, zombie)
	zp.X = 250

	proj := newTestProjectile(f, 100, zp.Y, 2)
	projPos, _ := ecs.GetComponent[*components.PositionComponent](f.em, proj)

	projPos.X += 50 * 1.0
	if physics.ResolveProjectile(proj) {
		t.Fatal("距离 100 时不应命中")
	}
	if zombieHealth(f, zombie) != 100 {
		t.Fatalf("未命中时不应扣血")
	}

	hits := 0
	for step := 0; step < 40 && !f.em.IsMarkedForDestroy(proj); step++ {
		projPos.X += 50 * 0.1
		if physics.ResolveProjectile(proj) {
			hits++
		}
	}

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if !f.em.IsMarkedForDestroy(proj) {
		t.Error("命中后子弹应被删除")
	}
	if got := zombieHealth(f, zombie); got != 80 {
		t.Errorf("health = %v, want 80", got)
	}
}

func TestPhysicsSystem_OnlyFirstZombieInRowOrder(t *testing.T) {
	f := newCombatFixture()
	physics := NewPhysicsSystem(f.em, f.lanes, f.combat)

	first := f.newZombie(t, 1, 100)
	second := f.newZombie(t, 1, 100)
	zombiePos(f, second).X = zombiePos(f, first).X

	p := zombiePos(f, first)
	proj := newTestProjectile(f, p.X-5, p.Y, 1)

	if !physics.ResolveProjectile(proj) {
		t.Fatal("应命中")
	}
	if zombieHealth(f, first) != 80 || zombieHealth(f, second) != 100 {
		t.Errorf("只应命中先生成的僵尸: first=%v second=%v", zombieHealth(f, first), zombieHealth(f, second))
	}
}

func TestPhysicsSystem_IgnoresOtherRows(t *testing.T) {
	f := newCombatFixture()
	physics := NewPhysicsSystem(f.em, f.lanes, f.combat)

	zombie := f.newZombie(t, 3, 100)
	p := zombiePos(f, zombie)

	// 同一位置但登记在另一行
	proj := newTestProjectile(f, p.X, p.Y, 0)
	if physics.ResolveProjectile(proj) {
		t.Error("不应命中其他行的僵尸")
	}
	if f.em.IsMarkedForDestroy(proj) {
		t.Error("未命中的子弹不应被删除")
	}
}

func TestPhysicsSystem_KillRemovesFromRowIndex(t *testing.T) {
	f := newCombatFixture()
	physics := NewPhysicsSystem(f.em, f.lanes, f.combat)

	zombie := f.newZombie(t, 4, 15)
	p := zombiePos(f, zombie)
	proj := newTestProjectile(f, p.X, p.Y, 4)

	physics.ResolveProjectile(proj)

	if !f.lanes.IsRowClear(4) {
		t.Error("被击杀的僵尸应立即从行索引中移除")
	}
	if f.gs.ZombiesKilled != 1 {
		t.Errorf("ZombiesKilled = %d, want 1", f.gs.ZombiesKilled)
	}
}
