package behavior

import (
	"testing"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

func countProjectiles(w *testWorld) int {
	return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em))
}

func countSuns(w *testWorld, source components.SunSource) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SunComponent](w.em) {
		sun, _ := ecs.GetComponent[*components.SunComponent](w.em, id)
		if sun.Source == source {
			n++
		}
	}
	return n
}

// TestPeashooterAttack 攻击冷却到期时只在本行有草坪内僵尸时发射
func TestPeashooterAttack(t *testing.T) {
	tests := []struct {
		name      string
		zombieAt  *utils.GridPos
		wantShots bool
	}{
		{"本行无僵尸", nil, false},
		{"僵尸在草坪右侧之外", &utils.GridPos{X: 11, Y: 2}, false},
		{"僵尸在草坪内", &utils.GridPos{X: 8, Y: 2}, true},
		{"僵尸在其他行", &utils.GridPos{X: 8, Y: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.plant(t, types.PlantPeashooter, 0, 2)
			if tt.zombieAt != nil {
				z := w.zombie(t, types.ZombieBasic, *tt.zombieAt)
				w.zombieComp(z).Speed = 0
			}

			// 2.1 秒内攻击冷却到期一次（子弹速度 300，0.1 秒内不会离开草坪）
			for i := 0; i < 21; i++ {
				w.tick(0.1)
			}

			if got := countProjectiles(w) > 0; got != tt.wantShots {
				t.Errorf("projectile fired = %v, want %v", got, tt.wantShots)
			}
		})
	}
}

// TestSunflowerProduction 向日葵首次 7 秒后生产阳光
func TestSunflowerProduction(t *testing.T) {
	w := newTestWorld(t)
	w.plant(t, types.PlantSunflower, 2, 1)

	for i := 0; i < 69; i++ {
		w.tick(0.1)
	}
	if countSuns(w, components.SunFromPlant) != 0 {
		t.Fatal("no sun expected before 7s")
	}

	for i := 0; i < 2; i++ {
		w.tick(0.1)
	}
	if got := countSuns(w, components.SunFromPlant); got != 1 {
		t.Errorf("expected 1 sun after 7s, got %d", got)
	}
}

// TestWallnutIdle 坚果墙没有每帧行为
func TestWallnutIdle(t *testing.T) {
	w := newTestWorld(t)
	id := w.plant(t, types.PlantWallnut, 0, 0)

	for i := 0; i < 600; i++ {
		w.tick(frame)
	}

	if countProjectiles(w) != 0 || countSuns(w, components.SunFromPlant) != 0 {
		t.Error("wallnut should not spawn anything")
	}
	if w.health(id).CurrentHealth != w.health(id).MaxHealth {
		t.Error("wallnut health should be untouched")
	}
}

// TestPeashooterDefendsLastColumn 僵尸中心还在草坪右边界外就开始啃食第 8 列的植物，此时本行的豌豆射手必须开火
func TestPeashooterDefendsLastColumn(t *testing.T) {
	w := newTestWorld(t)
	w.plant(t, types.PlantPeashooter, 0, 2)
	wallnut := w.plant(t, types.PlantWallnut, 8, 2)
	z := w.zombie(t, types.ZombieBasic, utils.GridPos{X: 11, Y: 2})

	const dt = 1.0 / 60
	for i := 0; i < 20*60 && w.zombieComp(z).State != components.ZombieEating; i++ {
		w.tick(dt)
	}
	if w.zombieComp(z).State != components.ZombieEating {
		t.Fatal("zombie never reached the wall-nut")
	}

	pos := w.position(z)
	if utils.IsWorldPosOnGrid(pos.X, pos.Y) {
		t.Fatalf("zombie center x=%.1f should still be right of the lawn when it starts eating", pos.X)
	}
	if w.lanes.IsRowClear(2) {
		t.Fatal("a zombie eating a column 8 plant must count as present in its row")
	}

	shotTicks := 0
	for i := 0; i < 3*60; i++ {
		w.tick(dt)
		if countProjectiles(w) > 0 {
			shotTicks++
		}
	}
	if shotTicks == 0 {
		t.Error("peashooter never fired at the zombie eating the wall-nut")
	}
	if w.health(wallnut).CurrentHealth >= w.health(wallnut).MaxHealth {
		t.Error("wall-nut should have been bitten")
	}
}
