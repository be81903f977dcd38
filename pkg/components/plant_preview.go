package components

import "github.com/decker502/pvz-core/pkg/ecs"

// PlantPreviewComponent 标记实体为种植预览（跟随指针的浮动指示器）
// 与 PositionComponent 配合使用
type PlantPreviewComponent struct {
	// PlantType 预览的植物类型
	PlantType PlantType
	// CardEntity 触发预览的卡片实体
	CardEntity ecs.EntityID
	// TargetCol / TargetRow 指针当前所在格子（TargetValid 为 false 时无意义）
	TargetCol   int
	TargetRow   int
	TargetValid bool
}
