package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如生产周期、攻击冷却）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "sun_production"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Repeating   bool    // 到期后是否自动重新计时
	Interval    float64 // 重复计时的周期（首次 TargetTime 可与之不同）
}

// Tick 推进计时器，返回本帧是否到期
// 重复计时器到期后保留溢出时间并以 Interval 为新的目标时间
func (t *TimerComponent) Tick(dt float64) bool {
	if t.IsReady && !t.Repeating {
		return false
	}
	t.CurrentTime += dt
	if t.CurrentTime < t.TargetTime {
		return false
	}
	if t.Repeating {
		t.CurrentTime -= t.TargetTime
		if t.Interval > 0 {
			t.TargetTime = t.Interval
		}
		if t.CurrentTime >= t.TargetTime {
			// 单帧跨越多个周期时只触发一次
			t.CurrentTime = 0
		}
		return true
	}
	t.IsReady = true
	return true
}

// Remaining 返回距离到期的剩余时间
func (t *TimerComponent) Remaining() float64 {
	if t.IsReady {
		return 0
	}
	r := t.TargetTime - t.CurrentTime
	if r < 0 {
		return 0
	}
	return r
}
