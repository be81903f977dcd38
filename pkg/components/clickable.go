package components

import "math"

// ClickableComponent 标记实体可以被点击（以实体位置为圆心的圆形区域）
type ClickableComponent struct {
	Radius    float64 // 可点击半径(像素)
	IsEnabled bool    // 是否可以被点击
}

// Contains 检查点击点是否落在以 (cx, cy) 为圆心的可点击区域内
func (c *ClickableComponent) Contains(cx, cy, px, py float64) bool {
	if !c.IsEnabled {
		return false
	}
	return math.Hypot(px-cx, py-cy) <= c.Radius
}
