package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pvz-core/pkg/app"
	"github.com/decker502/pvz-core/pkg/config"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "数值配置文件路径（YAML），为空使用内置配置")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用配置文件中的值或当前时间")
)

func main() {
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("植物大战僵尸 - 无尽模式")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	records := game.Records().GetRecords()
	log.Printf("[Main] Lifetime: wins=%d losses=%d best=%.1fs", records.Wins, records.Losses, records.BestSurvival)
}
