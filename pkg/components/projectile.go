package components

// ProjectileComponent 标识实体为子弹
type ProjectileComponent struct {
	Row    int     // 所在行，只与同行僵尸检测碰撞
	Damage float64 // 命中伤害
	Radius float64 // 碰撞半径
}
