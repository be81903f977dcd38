// Package types 定义共享的基础类型
package types

import "fmt"

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota
	ZombieBasic              // 普通僵尸
	ZombieConehead           // 路障僵尸
	ZombiePolevaulter        // 撑杆跳僵尸（可跳过第一株挡路的植物，仅一次）
)

// AllZombieTypes 所有僵尸类型（用于配置校验和随机选择的稳定顺序）
var AllZombieTypes = []ZombieType{ZombieBasic, ZombieConehead, ZombiePolevaulter}

var zombieTypeNames = map[ZombieType]string{
	ZombieBasic:       "basic",
	ZombieConehead:    "conehead",
	ZombiePolevaulter: "polevaulter",
}

// String 返回僵尸类型的字符串表示（同时用作配置文件的键）
func (z ZombieType) String() string {
	if name, ok := zombieTypeNames[z]; ok {
		return name
	}
	return "unknown"
}

// ParseZombieType 将配置键解析为僵尸类型
func ParseZombieType(name string) (ZombieType, error) {
	for t, n := range zombieTypeNames {
		if n == name {
			return t, nil
		}
	}
	return ZombieUnknown, fmt.Errorf("unknown zombie type %q", name)
}
