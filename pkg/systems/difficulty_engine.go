package systems

import (
	"math"

	"github.com/decker502/pvz-core/pkg/config"
)

// DifficultyEngine 难度引擎
// 根据游戏已进行时间计算僵尸生成间隔：
//
//	interval = InitialInterval / (RampK*elapsed + 1)^RampP，不低于 MinInterval
//
// elapsed 非负时结果随 elapsed 单调不增
type DifficultyEngine struct {
	spawn config.SpawnConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(spawn config.SpawnConfig) *DifficultyEngine {
	return &DifficultyEngine{spawn: spawn}
}

// SpawnInterval 计算 elapsed 秒时的生成间隔
func (d *DifficultyEngine) SpawnInterval(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	interval := d.spawn.InitialInterval / math.Pow(d.spawn.RampK*elapsed+1, d.spawn.RampP)
	return math.Max(interval, d.spawn.MinInterval)
}
