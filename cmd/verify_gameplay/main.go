// verify_gameplay 无界面运行模拟核心，按固定脚本种植和收集阳光，输出每段时间的统计
//
// 用法:
//
//	go run ./cmd/verify_gameplay -duration 400 -seed 7
//	go run ./cmd/verify_gameplay -config my_balance.yaml -noplant
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/sim"
	"github.com/decker502/pvz-core/pkg/types"
	"github.com/decker502/pvz-core/pkg/utils"
)

const tickRate = 60

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "数值配置文件路径，为空使用内置配置")
	seed       = flag.Int64("seed", 1, "随机种子")
	duration   = flag.Float64("duration", 400, "最长模拟时间（秒）")
	report     = flag.Float64("report", 10, "统计输出间隔（秒）")
	noPlant    = flag.Bool("noplant", false, "不种植任何植物（验证失败判定）")
)

// plan 脚本种植顺序：第 0 列向日葵，第 1、2 列豌豆射手，第 3 列坚果墙
var plan = buildPlan()

type placement struct {
	slot int
	tile utils.Tile
}

func buildPlan() []placement {
	var p []placement
	for row := 0; row < config.GridRows; row++ {
		p = append(p, placement{slotOf(types.PlantSunflower), utils.Tile{Col: 0, Row: row}})
	}
	for row := 0; row < config.GridRows; row++ {
		p = append(p, placement{slotOf(types.PlantPeashooter), utils.Tile{Col: 1, Row: row}})
	}
	for row := 0; row < config.GridRows; row++ {
		p = append(p, placement{slotOf(types.PlantWallnut), utils.Tile{Col: 3, Row: row}})
	}
	for row := 0; row < config.GridRows; row++ {
		p = append(p, placement{slotOf(types.PlantPeashooter), utils.Tile{Col: 2, Row: row}})
	}
	return p
}

func slotOf(pt types.PlantType) int {
	for i, t := range types.AllPlantTypes {
		if t == pt {
			return i
		}
	}
	return -1
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultBalanceConfig()
	if *configPath != "" {
		loaded, err := config.LoadBalanceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Rules.Seed = *seed

	s := sim.New(cfg, nil)
	s.Start()
	fmt.Printf("session %s seed=%d\n", s.State().SessionID, s.Seed())

	next := 0
	dt := 1.0 / tickRate
	nextReport := *report

	for frame := 0; float64(frame)*dt < *duration; frame++ {
		s.Update(dt)
		snap := s.Snapshot()

		collectSuns(s, snap)
		if !*noPlant && next < len(plan) && tryPlace(s, plan[next]) {
			next++
		}

		if snap.Elapsed >= nextReport {
			printSummary(snap)
			nextReport += *report
		}
		if snap.Phase == game.PhaseEnded {
			break
		}
	}

	snap := s.Snapshot()
	printSummary(snap)
	result := "LOSE"
	if snap.Won {
		result = "WIN"
	}
	if snap.Phase != game.PhaseEnded {
		result = "UNFINISHED"
	}
	fmt.Printf("result=%s elapsed=%.1fs killed=%d placed=%d\n", result, snap.Elapsed, snap.ZombiesKilled, snap.PlantsPlaced)
}

// collectSuns 收集所有在场的阳光
func collectSuns(s *sim.Simulation, snap sim.Snapshot) {
	for _, e := range snap.Entities {
		if e.Kind == sim.KindSun {
			s.Click(e.X, e.Y)
		}
	}
}

// tryPlace 卡片可用时按计划种植一株
func tryPlace(s *sim.Simulation, p placement) bool {
	if err := s.SelectSlot(p.slot); err != nil {
		return false
	}
	x, y := p.tile.ToWorld()
	s.PointerMove(x, y)
	return s.Click(x, y)
}

func printSummary(snap sim.Snapshot) {
	fmt.Printf("[%6.1fs] phase=%-7s sun=%4d plants=%2d zombies=%2d projectiles=%2d suns=%d killed=%d\n",
		snap.Elapsed, snap.Phase, snap.Sun,
		snap.CountKind(sim.KindPlant), snap.CountKind(sim.KindZombie),
		snap.CountKind(sim.KindProjectile), snap.CountKind(sim.KindSun), snap.ZombiesKilled)
}
