package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/pvz-core/pkg/types"
)

// TestDefaultBalanceConfig 内置配置可以解析且数值与设计一致
func TestDefaultBalanceConfig(t *testing.T) {
	cfg := DefaultBalanceConfig()

	sunflower, ok := cfg.Plant(types.PlantSunflower)
	if !ok {
		t.Fatal("sunflower stats missing")
	}
	if sunflower.Cost != 50 {
		t.Errorf("sunflower cost = %d, want 50", sunflower.Cost)
	}

	peashooter, _ := cfg.Plant(types.PlantPeashooter)
	if peashooter.Cost != 100 || peashooter.AttackInterval != 2 {
		t.Errorf("peashooter = %+v", peashooter)
	}

	polevaulter, ok := cfg.Zombie(types.ZombiePolevaulter)
	if !ok || !polevaulter.CanJump {
		t.Errorf("polevaulter should be able to jump: %+v", polevaulter)
	}

	if len(cfg.DebugZombies) != 2 {
		t.Errorf("expected 2 debug zombies, got %d", len(cfg.DebugZombies))
	}
}

func TestUnlockedZombies(t *testing.T) {
	cfg := DefaultBalanceConfig()

	tests := []struct {
		name    string
		elapsed float64
		want    []types.ZombieType
	}{
		{"开局", 0, []types.ZombieType{types.ZombieBasic, types.ZombieConehead}},
		{"解锁前一刻", 119.9, []types.ZombieType{types.ZombieBasic, types.ZombieConehead}},
		{"撑杆跳解锁", 120, []types.ZombieType{types.ZombieBasic, types.ZombieConehead, types.ZombiePolevaulter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.UnlockedZombies(tt.elapsed)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLoadBalanceConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "balance.yaml")
		content := strings.Replace(string(defaultBalanceYAML), "initial: 50", "initial: 150", 1)
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadBalanceConfig(configPath)
		if err != nil {
			t.Fatalf("LoadBalanceConfig failed: %v", err)
		}
		if cfg.Sun.Initial != 150 {
			t.Errorf("initial sun = %d, want 150", cfg.Sun.Initial)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadBalanceConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("YAML 格式错误", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(configPath, []byte("plants: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadBalanceConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestValidateBalanceConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *BalanceConfig)
	}{
		{"缺少植物", func(cfg *BalanceConfig) { delete(cfg.Plants, "wallnut") }},
		{"未知植物", func(cfg *BalanceConfig) { cfg.Plants["cactus"] = PlantStats{Health: 1} }},
		{"植物生命值为零", func(cfg *BalanceConfig) {
			s := cfg.Plants["sunflower"]
			s.Health = 0
			cfg.Plants["sunflower"] = s
		}},
		{"未知僵尸", func(cfg *BalanceConfig) { cfg.Zombies["gargantuar"] = ZombieStats{Health: 1} }},
		{"啃咬偏移超过格子宽度", func(cfg *BalanceConfig) { cfg.BiteOffset = CellWidth }},
		{"子弹半径为零", func(cfg *BalanceConfig) { cfg.Projectile.Radius = 0 }},
		{"最小间隔大于初始间隔", func(cfg *BalanceConfig) { cfg.Spawn.MinInterval = 20 }},
		{"生成列在草坪内", func(cfg *BalanceConfig) { cfg.Spawn.SpawnColumn = 5 }},
		{"预置僵尸行越界", func(cfg *BalanceConfig) { cfg.DebugZombies[0].Row = GridRows }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBalanceConfig()
			tt.mutate(cfg)
			err := validateBalanceConfig(cfg)
			if err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseBalanceConfig_ErrInvalidConfig(t *testing.T) {
	content := strings.Replace(string(defaultBalanceYAML), "winAfter: 360", "winAfter: 0", 1)
	_, err := ParseBalanceConfig([]byte(content))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
