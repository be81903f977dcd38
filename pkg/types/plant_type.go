// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// PlantType 定义植物的类型
type PlantType int

const (
	// PlantUnknown 未知植物类型
	PlantUnknown PlantType = iota
	// PlantSunflower 向日葵（生产阳光）
	PlantSunflower
	// PlantPeashooter 豌豆射手（攻击）
	PlantPeashooter
	// PlantWallnut 坚果墙（防御，无计时器）
	PlantWallnut
)

// AllPlantTypes 工具栏顺序
var AllPlantTypes = []PlantType{PlantSunflower, PlantPeashooter, PlantWallnut}

var plantTypeNames = map[PlantType]string{
	PlantSunflower:  "sunflower",
	PlantPeashooter: "peashooter",
	PlantWallnut:    "wallnut",
}

// String 返回植物类型的字符串表示（同时用作配置文件的键）
func (p PlantType) String() string {
	if name, ok := plantTypeNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePlantType 将配置键解析为植物类型
func ParsePlantType(name string) (PlantType, error) {
	for t, n := range plantTypeNames {
		if n == name {
			return t, nil
		}
	}
	return PlantUnknown, fmt.Errorf("unknown plant type %q", name)
}
