package components

import "github.com/decker502/pvz-core/pkg/types"

// ZombieState 僵尸的行为状态
// 渲染层通过观察状态变化切换行走/啃食动画
type ZombieState int

const (
	// ZombieWalking 向左行走
	ZombieWalking ZombieState = iota
	// ZombieEating 停下啃食脚下格子的植物
	ZombieEating
)

// String 返回状态名
func (s ZombieState) String() string {
	if s == ZombieEating {
		return "eating"
	}
	return "walking"
}

// ZombieComponent 标识实体为僵尸
type ZombieComponent struct {
	ZombieType types.ZombieType
	State      ZombieState
	// Row 所在行（由生成位置决定，僵尸不换行）
	Row int
	// Speed 行走速度（像素/秒）
	Speed float64
	// EatDPS 啃食伤害（每秒）
	EatDPS float64
	// CanJump 还可以跳过一株植物（跳过后清除）
	CanJump bool
}
