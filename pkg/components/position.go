package components

// PositionComponent 存储实体在世界坐标系中的位置
// 植物、僵尸、子弹、阳光均以中心点作为位置
type PositionComponent struct {
	X float64
	Y float64
}
