// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，桌面端通过 main.go 调用 NewApp()。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/scenes"
)

// AppName gdata 存储目录名
const AppName = "pvz-core"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 数值配置文件路径，为空使用内置配置
	ConfigPath string
	// Seed 随机种子，非 0 时覆盖配置文件中的值
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	records                  *game.RecordManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	balance := config.DefaultBalanceConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadBalanceConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		balance = loaded
		log.Printf("[Config] 加载数值配置: %s", cfg.ConfigPath)
	}
	if cfg.Seed != 0 {
		balance.Rules.Seed = cfg.Seed
	}

	// 战绩存储，失败时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata not available, records will not be persisted: %v", err)
		gdataManager = nil
	}
	records := game.NewRecordManager(gdataManager)

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func() scenes.Scene {
		return scenes.NewGameScene(balance, records)
	})
	sceneManager.Restart()

	return &App{
		sceneManager: sceneManager,
		records:      records,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 一局结束后按 R 重新开始
	if a.sceneManager.CurrentFinished() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Records 返回战绩管理器
func (a *App) Records() *game.RecordManager {
	return a.records
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
