package components

import (
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
)

// LaneZombiesComponent 每行僵尸索引（行 -> 僵尸列表）
//
// 列表按生成顺序排列（不按位置排序），僵尸创建时加入、死亡时移除
type LaneZombiesComponent struct {
	Rows [config.GridRows][]ecs.EntityID
}
