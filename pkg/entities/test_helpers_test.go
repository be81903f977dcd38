package entities

import (
	"errors"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/utils"
)

// fakePlantRegistry 最小占用表实现，避免测试依赖 systems 包
type fakePlantRegistry struct {
	cells map[utils.Tile]ecs.EntityID
}

func newFakePlantRegistry() *fakePlantRegistry {
	return &fakePlantRegistry{cells: make(map[utils.Tile]ecs.EntityID)}
}

func (r *fakePlantRegistry) AddPlant(pos utils.GridPos, id ecs.EntityID) error {
	tile := pos.Tile()
	if _, ok := r.cells[tile]; ok {
		return errors.New("occupied")
	}
	r.cells[tile] = id
	return nil
}

func (r *fakePlantRegistry) QueryAt(pos utils.GridPos) (ecs.EntityID, bool) {
	id, ok := r.cells[pos.Tile()]
	return id, ok
}

// fakeZombieRegistry 记录加入的僵尸
type fakeZombieRegistry struct {
	rows map[int][]ecs.EntityID
}

func newFakeZombieRegistry() *fakeZombieRegistry {
	return &fakeZombieRegistry{rows: make(map[int][]ecs.EntityID)}
}

func (r *fakeZombieRegistry) AddZombie(row int, id ecs.EntityID) error {
	r.rows[row] = append(r.rows[row], id)
	return nil
}

// mockAssets 返回资源键本身作为句柄
type mockAssets struct{}

func (mockAssets) Asset(key string) components.AssetHandle {
	return key
}
