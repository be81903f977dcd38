package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/pvz-core/pkg/types"
)

//go:embed data/balance.yaml
var defaultBalanceYAML []byte

// ErrInvalidConfig 配置内容不合法
var ErrInvalidConfig = errors.New("invalid balance config")

// PlantStats 单个植物类型的数值配置
type PlantStats struct {
	Health               float64 `yaml:"health"`               // 初始生命值
	Cost                 int     `yaml:"cost"`                 // 阳光消耗
	Cooldown             float64 `yaml:"cooldown"`             // 卡片冷却时间（秒）
	AttackInterval       float64 `yaml:"attackInterval"`       // 攻击间隔（秒），0 表示不攻击
	FirstProductionDelay float64 `yaml:"firstProductionDelay"` // 首次生产阳光的延迟（秒）
	ProductionInterval   float64 `yaml:"productionInterval"`   // 生产间隔（秒），0 表示不生产
}

// ZombieStats 单个僵尸类型的数值配置
type ZombieStats struct {
	Health   float64 `yaml:"health"`   // 初始生命值
	Speed    float64 `yaml:"speed"`    // 行走速度（像素/秒）
	EatDPS   float64 `yaml:"eatDps"`   // 啃食伤害（每秒）
	UnlockAt float64 `yaml:"unlockAt"` // 开局后多少秒加入随机池
	CanJump  bool    `yaml:"canJump"`  // 是否可以跳过第一株挡路的植物
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`  // 水平速度（像素/秒）
	Radius float64 `yaml:"radius"` // 碰撞半径
	Damage float64 `yaml:"damage"` // 单次命中伤害
}

// SunConfig 阳光经济配置
type SunConfig struct {
	Initial       int     `yaml:"initial"`       // 开局阳光
	Value         int     `yaml:"value"`         // 每个阳光的价值
	CollectRadius float64 `yaml:"collectRadius"` // 点击收集半径
	RiseSpeed     float64 `yaml:"riseSpeed"`     // 植物生产的阳光上浮速度
	FallSpeed     float64 `yaml:"fallSpeed"`     // 天降阳光下落速度
	SkyEnabled    bool    `yaml:"skyEnabled"`    // 是否启用天降阳光
	SkyInterval   float64 `yaml:"skyInterval"`   // 天降阳光间隔（秒）
}

// SpawnConfig 僵尸生成节奏配置
// 生成间隔 = InitialInterval / (RampK*elapsed + 1)^RampP，下限 MinInterval
type SpawnConfig struct {
	WarmUp          float64 `yaml:"warmUp"`          // 开局后多少秒开始生成
	InitialInterval float64 `yaml:"initialInterval"` // 初始间隔
	RampK           float64 `yaml:"rampK"`
	RampP           float64 `yaml:"rampP"`
	MinInterval     float64 `yaml:"minInterval"` // 间隔下限
	SpawnColumn     float64 `yaml:"spawnColumn"` // 生成位置（格子列，位于草坪右侧之外）
}

// RulesConfig 胜负规则配置
type RulesConfig struct {
	WinAfter   float64 `yaml:"winAfter"`   // 存活多少秒判定胜利
	LoseMargin float64 `yaml:"loseMargin"` // 僵尸越过草坪左边界多少像素判定失败
	Seed       int64   `yaml:"seed"`       // 随机种子，0 表示使用当前时间
}

// DebugZombie 开局预置僵尸
type DebugZombie struct {
	Type string `yaml:"type"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
}

// BalanceConfig 数值平衡配置文件结构
type BalanceConfig struct {
	Plants       map[string]PlantStats  `yaml:"plants"`
	Zombies      map[string]ZombieStats `yaml:"zombies"`
	BiteOffset   float64                `yaml:"biteOffset"`
	Projectile   ProjectileConfig       `yaml:"projectile"`
	Sun          SunConfig              `yaml:"sun"`
	Spawn        SpawnConfig            `yaml:"spawn"`
	Rules        RulesConfig            `yaml:"rules"`
	DebugZombies []DebugZombie          `yaml:"debugZombies"`
}

// DefaultBalanceConfig 返回内置的默认配置
func DefaultBalanceConfig() *BalanceConfig {
	cfg, err := ParseBalanceConfig(defaultBalanceYAML)
	if err != nil {
		// 内置配置随代码发布，解析失败说明构建本身有问题
		panic(fmt.Sprintf("embedded balance config: %v", err))
	}
	return cfg
}

// LoadBalanceConfig 从 YAML 文件加载数值配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*BalanceConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadBalanceConfig(filepath string) (*BalanceConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance config file %s: %w", filepath, err)
	}

	cfg, err := ParseBalanceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("balance config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseBalanceConfig 解析并校验 YAML 数据
func ParseBalanceConfig(data []byte) (*BalanceConfig, error) {
	var cfg BalanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	if err := validateBalanceConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// validateBalanceConfig 验证配置的完整性和合法性
func validateBalanceConfig(cfg *BalanceConfig) error {
	for _, pt := range types.AllPlantTypes {
		stats, ok := cfg.Plants[pt.String()]
		if !ok {
			return fmt.Errorf("plant %s: missing", pt)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("plant %s: health must be positive, got %v", pt, stats.Health)
		}
		if stats.Cost < 0 {
			return fmt.Errorf("plant %s: cost cannot be negative, got %d", pt, stats.Cost)
		}
		if stats.Cooldown < 0 || stats.AttackInterval < 0 || stats.ProductionInterval < 0 || stats.FirstProductionDelay < 0 {
			return fmt.Errorf("plant %s: timings cannot be negative", pt)
		}
	}
	for name := range cfg.Plants {
		if _, err := types.ParsePlantType(name); err != nil {
			return err
		}
	}

	if len(cfg.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required")
	}
	for name, stats := range cfg.Zombies {
		if _, err := types.ParseZombieType(name); err != nil {
			return err
		}
		if stats.Health <= 0 {
			return fmt.Errorf("zombie %s: health must be positive, got %v", name, stats.Health)
		}
		if stats.Speed < 0 || stats.EatDPS < 0 || stats.UnlockAt < 0 {
			return fmt.Errorf("zombie %s: speed, eatDps and unlockAt cannot be negative", name)
		}
	}

	if cfg.BiteOffset < 0 || cfg.BiteOffset >= CellWidth {
		return fmt.Errorf("biteOffset must be in [0, %v), got %v", CellWidth, cfg.BiteOffset)
	}

	if cfg.Projectile.Speed <= 0 || cfg.Projectile.Radius <= 0 || cfg.Projectile.Damage <= 0 {
		return fmt.Errorf("projectile speed, radius and damage must be positive")
	}

	if cfg.Sun.Initial < 0 || cfg.Sun.Value <= 0 || cfg.Sun.CollectRadius <= 0 {
		return fmt.Errorf("sun: initial >= 0, value > 0 and collectRadius > 0 required")
	}
	if cfg.Sun.SkyEnabled && cfg.Sun.SkyInterval <= 0 {
		return fmt.Errorf("sun: skyInterval must be positive when sky sun is enabled")
	}

	s := cfg.Spawn
	if s.InitialInterval <= 0 || s.MinInterval <= 0 {
		return fmt.Errorf("spawn: initialInterval and minInterval must be positive")
	}
	if s.MinInterval > s.InitialInterval {
		return fmt.Errorf("spawn: minInterval %v exceeds initialInterval %v", s.MinInterval, s.InitialInterval)
	}
	if s.WarmUp < 0 || s.RampK < 0 || s.RampP < 0 {
		return fmt.Errorf("spawn: warmUp, rampK and rampP cannot be negative")
	}
	if s.SpawnColumn < float64(GridColumns) {
		return fmt.Errorf("spawn: spawnColumn must be beyond the right edge (>= %d), got %v", GridColumns, s.SpawnColumn)
	}

	if cfg.Rules.WinAfter <= 0 {
		return fmt.Errorf("rules: winAfter must be positive")
	}

	for i, dz := range cfg.DebugZombies {
		if _, err := types.ParseZombieType(dz.Type); err != nil {
			return fmt.Errorf("debugZombies[%d]: %w", i, err)
		}
		if dz.Row < 0 || dz.Row >= GridRows {
			return fmt.Errorf("debugZombies[%d]: row %d out of range", i, dz.Row)
		}
	}

	return nil
}

// Plant 获取指定植物类型的数值
func (c *BalanceConfig) Plant(pt types.PlantType) (PlantStats, bool) {
	stats, ok := c.Plants[pt.String()]
	return stats, ok
}

// Zombie 获取指定僵尸类型的数值
func (c *BalanceConfig) Zombie(zt types.ZombieType) (ZombieStats, bool) {
	stats, ok := c.Zombies[zt.String()]
	return stats, ok
}

// UnlockedZombies 返回在 elapsed 秒时已解锁的僵尸类型（顺序稳定）
func (c *BalanceConfig) UnlockedZombies(elapsed float64) []types.ZombieType {
	result := make([]types.ZombieType, 0, len(c.Zombies))
	for _, zt := range types.AllZombieTypes {
		if stats, ok := c.Zombies[zt.String()]; ok && stats.UnlockAt <= elapsed {
			result = append(result, zt)
		}
	}
	return result
}
