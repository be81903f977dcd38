package components

import "fmt"

// CardState 工具栏卡片的种植状态
type CardState int

const (
	// CardIdle 空闲：根据可用性显示正常或置灰
	CardIdle CardState = iota
	// CardArmed 已选中：预览跟随指针，等待第二次点击
	CardArmed
)

// PlantCardComponent 表示植物选择卡片（工具栏槽位）的数据
type PlantCardComponent struct {
	// Index 工具栏中的槽位序号
	Index int
	// PlantType 植物类型
	PlantType PlantType
	// SunCost 种植消耗的阳光数量
	SunCost int
	// CooldownTime 冷却总时间（秒）
	CooldownTime float64
	// CurrentCooldown 当前剩余冷却时间（秒）
	CurrentCooldown float64
	// IsAvailable 是否可用（冷却结束且阳光足够），只在阳光或冷却状态变化时重算
	IsAvailable bool
	// State 种植流程状态
	State CardState
}

// CooldownFinished 冷却是否结束
func (c *PlantCardComponent) CooldownFinished() bool {
	return c.CurrentCooldown <= 0
}

// CooldownText 剩余冷却时间文字，冷却结束时为空
func (c *PlantCardComponent) CooldownText() string {
	if c.CooldownFinished() {
		return ""
	}
	return fmt.Sprintf("%.1f", c.CurrentCooldown)
}
