package behavior

import (
	"testing"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/systems"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// testWorld 行为系统测试用的最小世界
type testWorld struct {
	em      *ecs.EntityManager
	cfg     *config.BalanceConfig
	gs      *game.GameState
	grid    *systems.LawnGridSystem
	lanes   *systems.LaneIndexSystem
	combat  *systems.CombatSystem
	physics *systems.PhysicsSystem
	bs      *BehaviorSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	w := &testWorld{
		em:  ecs.NewEntityManager(),
		cfg: config.DefaultBalanceConfig(),
	}
	w.gs = game.NewGameState(w.cfg.Sun.Initial)
	w.gs.Start()
	w.grid = systems.NewLawnGridSystem(w.em)
	w.lanes = systems.NewLaneIndexSystem(w.em, w.cfg.BiteOffset)
	w.combat = systems.NewCombatSystem(w.em, w.gs, w.grid, w.lanes)
	w.physics = systems.NewPhysicsSystem(w.em, w.lanes, w.combat)
	w.bs = NewBehaviorSystem(w.em, w.cfg, nil, w.grid, w.lanes, w.combat, w.physics)
	return w
}

func (w *testWorld) plant(t *testing.T, pt types.PlantType, col, row int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlantEntity(w.em, w.grid, w.cfg, nil, pt, utils.Tile{Col: col, Row: row}, w.gs.Elapsed)
	if err != nil {
		t.Fatalf("failed to plant %v at (%d, %d): %v", pt, col, row, err)
	}
	return id
}

func (w *testWorld) zombie(t *testing.T, zt types.ZombieType, pos utils.GridPos) ecs.EntityID {
	t.Helper()
	id, err := entities.NewZombieEntity(w.em, w.lanes, w.cfg, nil, zt, pos, w.gs.Elapsed)
	if err != nil {
		t.Fatalf("failed to spawn %v: %v", zt, err)
	}
	return id
}

// tick 执行一帧并在帧末清理实体
func (w *testWorld) tick(dt float64) {
	w.bs.Update(dt)
	w.em.RemoveMarkedEntities()
}

func (w *testWorld) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	return pos
}

func (w *testWorld) health(id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](w.em, id)
	return h
}

func (w *testWorld) zombieComp(id ecs.EntityID) *components.ZombieComponent {
	z, _ := ecs.GetComponent[*components.ZombieComponent](w.em, id)
	return z
}
