package components

// HealthComponent 存储可被攻击实体（植物、僵尸）的共有属性
// 生命值只会因伤害而减少；降到 0 及以下时由 CombatSystem 标记死亡（仅一次）
type HealthComponent struct {
	Label         string  // 标识名（如 "peashooter"、"conehead"），用于日志
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值
	SpawnedAt     float64 // 创建时的游戏时间（秒）
	IsDead        bool    // 已标记死亡（等待帧末清理）
}

// Percent 返回生命值百分比 (0.0 - 1.0)
func (h *HealthComponent) Percent() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	p := h.CurrentHealth / h.MaxHealth
	if p < 0 {
		return 0
	}
	return p
}
