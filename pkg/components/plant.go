package components

import "github.com/decker502/pvz-core/pkg/types"

// PlantType 是 types.PlantType 的类型别名
type PlantType = types.PlantType

// PlantComponent 标识实体为植物
// 包含植物类型和所在格子位置信息（种植后不再改变）
type PlantComponent struct {
	// PlantType 植物类型（向日葵、豌豆射手、坚果墙）
	PlantType PlantType
	// GridRow 所在草坪行 (0-4, 从上到下)
	GridRow int
	// GridCol 所在草坪列 (0-8, 从左到右)
	GridCol int
}
