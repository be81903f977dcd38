package components

// VelocityComponent 存储实体的速度（像素/秒）
// 子弹 VX > 0 向右；植物生产的阳光 VY < 0 上浮；天降阳光 VY > 0 下落
type VelocityComponent struct {
	VX float64
	VY float64
}
