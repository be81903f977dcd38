package components

// SunSource 阳光来源
type SunSource int

const (
	// SunFromPlant 向日葵生产，向上漂浮
	SunFromPlant SunSource = iota
	// SunFromSky 天降阳光，向下坠落
	SunFromSky
)

// SunComponent 标记实体为阳光
type SunComponent struct {
	Source SunSource
	Value  int // 收集后增加的阳光数
}
