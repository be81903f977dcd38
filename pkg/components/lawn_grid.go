package components

import (
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// LawnGridComponent 草坪网格占用表（格子 -> 植物）
//
// Occupancy[row][col] = EntityID，其中 0 表示空格子
// 每个格子最多只有一株植物
type LawnGridComponent struct {
	Occupancy [config.GridRows][config.GridColumns]ecs.EntityID
}
