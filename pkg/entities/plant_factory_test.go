package entities

import (
	"testing"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

// TestNewPlantEntity 测试各类植物的组件组合
func TestNewPlantEntity(t *testing.T) {
	cfg := config.DefaultBalanceConfig()

	tests := []struct {
		name         string
		plantType    types.PlantType
		wantBehavior components.BehaviorType
		wantTimer    string
	}{
		{"向日葵", types.PlantSunflower, components.BehaviorSunflower, "sun_production"},
		{"豌豆射手", types.PlantPeashooter, components.BehaviorPeashooter, "attack_cooldown"},
		{"坚果墙", types.PlantWallnut, components.BehaviorWallnut, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			grid := newFakePlantRegistry()
			tile := utils.Tile{Col: 3, Row: 2}

			id, err := NewPlantEntity(em, grid, cfg, mockAssets{}, tt.plantType, tile, 12.5)
			if err != nil {
				t.Fatalf("NewPlantEntity failed: %v", err)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			wantX, wantY := tile.ToWorld()
			if pos.X != wantX || pos.Y != wantY {
				t.Errorf("position = (%.1f, %.1f), want (%.1f, %.1f)", pos.X, pos.Y, wantX, wantY)
			}

			health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			stats, _ := cfg.Plant(tt.plantType)
			if health.CurrentHealth != stats.Health || health.SpawnedAt != 12.5 {
				t.Errorf("health = %+v", health)
			}

			behavior, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
			if behavior.Type != tt.wantBehavior {
				t.Errorf("behavior = %v, want %v", behavior.Type, tt.wantBehavior)
			}

			timer, hasTimer := ecs.GetComponent[*components.TimerComponent](em, id)
			if tt.wantTimer == "" && hasTimer {
				t.Error("wallnut should have no timer")
			}
			if tt.wantTimer != "" && (!hasTimer || timer.Name != tt.wantTimer) {
				t.Errorf("timer = %+v, want %s", timer, tt.wantTimer)
			}

			sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
			if sprite.Asset != AssetKeyPlant(tt.plantType) {
				t.Errorf("sprite asset = %v, want forwarded handle", sprite.Asset)
			}

			if occupant, ok := grid.QueryAt(tile.ToGridPos()); !ok || occupant != id {
				t.Errorf("grid occupant = %d, want %d", occupant, id)
			}
		})
	}
}

// TestNewPlantEntity_OccupiedCellRollsBack 登记失败时实体不残留
func TestNewPlantEntity_OccupiedCellRollsBack(t *testing.T) {
	cfg := config.DefaultBalanceConfig()
	em := ecs.NewEntityManager()
	grid := newFakePlantRegistry()
	tile := utils.Tile{Col: 0, Row: 0}

	first, err := NewPlantEntity(em, grid, cfg, nil, types.PlantWallnut, tile, 0)
	if err != nil {
		t.Fatalf("first plant failed: %v", err)
	}

	second, err := NewPlantEntity(em, grid, cfg, nil, types.PlantPeashooter, tile, 0)
	if err == nil {
		t.Fatal("expected error when planting on occupied cell")
	}
	if second != 0 {
		t.Errorf("expected 0 id on failure, got %d", second)
	}

	em.RemoveMarkedEntities()
	plants := ecs.GetEntitiesWith1[*components.PlantComponent](em)
	if len(plants) != 1 || plants[0] != first {
		t.Errorf("expected only the first plant to remain, got %v", plants)
	}
}

func TestNewPlantEntity_OutOfBounds(t *testing.T) {
	cfg := config.DefaultBalanceConfig()
	em := ecs.NewEntityManager()

	if _, err := NewPlantEntity(em, newFakePlantRegistry(), cfg, nil, types.PlantSunflower, utils.Tile{Col: 9, Row: 0}, 0); err == nil {
		t.Error("expected error for out-of-bounds tile")
	}
	if em.EntityCount() != 0 {
		t.Errorf("no entity should be created, got %d", em.EntityCount())
	}
}
