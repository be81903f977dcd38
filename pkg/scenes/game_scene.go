package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/game"
	"github.com/decker502/pvz-core/pkg/sim"
	"github.com/decker502/pvz-core/pkg/systems"
	"github.com/decker502/pvz-core/pkg/utils"
)

var (
	lawnColorA     = color.RGBA{R: 86, G: 160, B: 60, A: 255}
	lawnColorB     = color.RGBA{R: 100, G: 176, B: 70, A: 255}
	houseColor     = color.RGBA{R: 70, G: 60, B: 55, A: 255}
	toolbarColor   = color.RGBA{R: 110, G: 75, B: 40, A: 255}
	cardColor      = color.RGBA{R: 230, G: 220, B: 180, A: 255}
	cardGreyColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	cardArmedColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	previewOK      = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	previewBad     = color.RGBA{R: 255, G: 0, B: 0, A: 90}
	healthBarColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// GameScene 主游戏场景
// 把屏幕输入转换为世界坐标交给模拟核心，按快照绘制占位图形
type GameScene struct {
	simulation *sim.Simulation
	records    *game.RecordManager
	cameraX    float64
	recorded   bool

	lastSnapshot sim.Snapshot
}

// NewGameScene 创建游戏场景
// records 可为 nil（不记录战绩）
func NewGameScene(cfg *config.BalanceConfig, records *game.RecordManager) *GameScene {
	s := &GameScene{
		simulation: sim.New(cfg, NewShapeAssets()),
		records:    records,
		cameraX:    config.GameCameraX,
	}
	s.lastSnapshot = s.simulation.Snapshot()
	return s
}

// IsFinished 实现 Finisher
func (s *GameScene) IsFinished() bool {
	return s.simulation.State().Phase == game.PhaseEnded
}

// Update 处理输入并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	state := s.simulation.State()

	if state.Phase == game.PhaseWaitingToStart {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.simulation.Start()
		}
		s.lastSnapshot = s.simulation.Snapshot()
		return
	}

	s.handleInput()
	s.simulation.Update(deltaTime)
	s.lastSnapshot = s.simulation.Snapshot()

	if state.Phase == game.PhaseEnded && !s.recorded {
		s.recordRun(state)
	}
}

func (s *GameScene) handleInput() {
	cx, cy := ebiten.CursorPosition()
	worldX, worldY := utils.ScreenToWorld(float64(cx), float64(cy), s.cameraX)
	s.simulation.PointerMove(worldX, worldY)

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			s.selectSlot(i)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if slot, ok := s.cardAtScreen(float64(cx), float64(cy)); ok {
		// 天降阳光会从卡片上方经过，阳光优先于卡片
		if !s.simulation.CollectSun(worldX, worldY) {
			s.selectSlot(slot)
		}
		return
	}
	s.simulation.Click(worldX, worldY)
}

func (s *GameScene) selectSlot(slot int) {
	err := s.simulation.SelectSlot(slot)
	switch {
	case err == nil:
	case errors.Is(err, systems.ErrNotAffordable), errors.Is(err, systems.ErrCardCoolingDown):
		log.Printf("[GameScene] Card %d unavailable: %v", slot, err)
	default:
		log.Printf("[GameScene] ❌ SelectSlot(%d): %v", slot, err)
	}
}

// cardAtScreen 屏幕坐标下点中的卡片序号
func (s *GameScene) cardAtScreen(x, y float64) (int, bool) {
	for i := 0; i < s.simulation.SlotCount(); i++ {
		cx, cy, w, h := config.PlantCardScreenRect(i)
		if x >= cx && x < cx+w && y >= cy && y < cy+h {
			return i, true
		}
	}
	return 0, false
}

func (s *GameScene) recordRun(state *game.GameState) {
	s.recorded = true
	if s.records == nil {
		return
	}
	// RecordRun 内部已经保存
	if err := s.records.RecordRun(state); err != nil {
		log.Printf("[GameScene] ❌ Failed to record run: %v", err)
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawLawn(screen)
	s.drawEntities(screen)
	s.drawToolbar(screen)
	s.drawOverlay(screen)
}

func (s *GameScene) drawLawn(screen *ebiten.Image) {
	houseW, _ := utils.WorldToScreen(config.GridWorldStartX, 0, s.cameraX)
	vector.DrawFilledRect(screen, 0, 0, float32(houseW), float32(config.ScreenHeight), houseColor, false)

	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridColumns; col++ {
			wx := config.GridWorldStartX + float64(col)*config.CellWidth
			wy := config.GridWorldStartY + float64(row)*config.CellHeight
			sx, sy := utils.WorldToScreen(wx, wy, s.cameraX)
			c := lawnColorA
			if (row+col)%2 == 1 {
				c = lawnColorB
			}
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(config.CellWidth), float32(config.CellHeight), c, false)
		}
	}
}

func (s *GameScene) drawEntities(screen *ebiten.Image) {
	for _, e := range s.lastSnapshot.Entities {
		sx, sy := utils.WorldToScreen(e.X, e.Y, s.cameraX)
		x, y := float32(sx), float32(sy)

		switch e.Kind {
		case sim.KindPlant:
			vector.DrawFilledCircle(screen, x, y, 28, colorOf(e.Asset, cardColor), true)
			drawHealthBar(screen, x, y-38, e.Health, e.MaxHealth)
		case sim.KindZombie:
			c := colorOf(e.Asset, cardGreyColor)
			vector.DrawFilledRect(screen, x-18, y-40, 36, 80, c, false)
			if e.State == "eating" {
				vector.StrokeRect(screen, x-18, y-40, 36, 80, 2, healthBarColor, false)
			}
			drawHealthBar(screen, x, y-48, e.Health, e.MaxHealth)
		case sim.KindProjectile:
			vector.DrawFilledCircle(screen, x, y, 8, colorOf(e.Asset, lawnColorB), true)
		case sim.KindSun:
			vector.DrawFilledCircle(screen, x, y, 22, colorOf(e.Asset, cardColor), true)
		case sim.KindPreview:
			c := previewBad
			if e.Valid {
				c = previewOK
			}
			vector.DrawFilledCircle(screen, x, y, 28, c, true)
		}
	}
}

func drawHealthBar(screen *ebiten.Image, x, y float32, health, maxHealth float64) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	w := float32(40 * health / maxHealth)
	vector.DrawFilledRect(screen, x-20, y, w, 4, healthBarColor, false)
}

func (s *GameScene) drawToolbar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ToolbarHeight), toolbarColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Sun\n%d", s.lastSnapshot.Sun), int(config.SunCounterX), int(config.SunCounterY))

	for _, card := range s.lastSnapshot.Cards {
		x, y, w, h := config.PlantCardScreenRect(card.Index)
		c := cardGreyColor
		switch {
		case card.Armed:
			c = cardArmedColor
		case card.Available:
			c = cardColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

		label := fmt.Sprintf("%s\n%d", shortName(card.Plant), card.Cost)
		if card.CooldownText != "" {
			label += "\n" + card.CooldownText
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)+4, int(y)+4)
	}
}

func (s *GameScene) drawOverlay(screen *ebiten.Image) {
	snap := s.lastSnapshot
	status := fmt.Sprintf("%.0fs  killed %d", snap.Elapsed, snap.ZombiesKilled)
	ebitenutil.DebugPrintAt(screen, status, config.ScreenWidth-140, 10)

	switch snap.Phase {
	case game.PhaseWaitingToStart:
		ebitenutil.DebugPrintAt(screen, "Click or press Enter to start", config.ScreenWidth/2-90, config.ScreenHeight/2)
	case game.PhaseEnded:
		msg := "THE ZOMBIES ATE YOUR BRAINS!"
		if snap.Won {
			msg = "YOU SURVIVED!"
		}
		ebitenutil.DebugPrintAt(screen, msg+"  (R to restart)", config.ScreenWidth/2-120, config.ScreenHeight/2)
	}
}

func shortName(plant string) string {
	if len(plant) > 6 {
		return plant[:6]
	}
	return plant
}
