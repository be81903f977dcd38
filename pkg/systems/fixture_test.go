package systems

import (
	"testing"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/entities"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// gameFixture 种植和经济相关系统的测试环境
type gameFixture struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	cfg     *config.BalanceConfig
	grid    *LawnGridSystem
	lanes   *LaneIndexSystem
	cards   *PlantCardSystem
	preview *PlantPreviewSystem
	collect *SunCollectionSystem
	input   *InputSystem
}

func newGameFixture(t *testing.T, sun int) *gameFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	gs := game.NewGameState(sun)
	gs.Start()
	cfg := config.DefaultBalanceConfig()
	grid := NewLawnGridSystem(em)
	cards := NewPlantCardSystem(em, gs)
	preview := NewPlantPreviewSystem(em, grid, nil)
	collect := NewSunCollectionSystem(em, gs)
	return &gameFixture{
		em:      em,
		gs:      gs,
		cfg:     cfg,
		grid:    grid,
		lanes:   NewLaneIndexSystem(em, cfg.BiteOffset),
		cards:   cards,
		preview: preview,
		collect: collect,
		input:   NewInputSystem(em, gs, cfg, nil, grid, cards, preview, collect),
	}
}

func (f *gameFixture) addCard(t *testing.T, pt types.PlantType, index int) ecs.EntityID {
	t.Helper()
	stats, ok := f.cfg.Plant(pt)
	if !ok {
		t.Fatalf("no stats for %s", pt)
	}
	return entities.NewPlantCardEntity(f.em, stats, pt, index)
}

func (f *gameFixture) card(id ecs.EntityID) *components.PlantCardComponent {
	card, _ := ecs.GetComponent[*components.PlantCardComponent](f.em, id)
	return card
}

func (f *gameFixture) plantAt(t *testing.T, pt types.PlantType, col, row int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlantEntity(f.em, f.grid, f.cfg, nil, pt, utils.Tile{Col: col, Row: row}, 0)
	if err != nil {
		t.Fatalf("NewPlantEntity failed: %v", err)
	}
	return id
}

func tileCenter(col, row int) (float64, float64) {
	return utils.Tile{Col: col, Row: row}.ToWorld()
}
