package game

import (
	"log"

	"github.com/google/uuid"

	"github.com/decker502/pvz-core/pkg/components"
)

// MaxSun 阳光上限（原版游戏显示上限）
const MaxSun = 9990

// GamePhase 游戏阶段
// 所有每帧系统只在 PhaseRunning 时运行
type GamePhase int

const (
	// PhaseWaitingToStart 等待开始
	PhaseWaitingToStart GamePhase = iota
	// PhaseRunning 进行中
	PhaseRunning
	// PhaseEnded 已结束（胜负见 GameState.Won）
	PhaseEnded
)

// String 返回阶段名
func (p GamePhase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState 存储一局游戏的状态
// 由 Simulation 创建并以指针传入各系统，不使用全局单例
type GameState struct {
	SessionID uuid.UUID // 本局标识，用于日志和战绩记录

	Sun int // 当前阳光数量

	Phase GamePhase // 当前阶段
	Won   bool      // 仅在 PhaseEnded 时有意义

	Elapsed float64 // 进入 PhaseRunning 后经过的游戏时间（秒）

	ZombiesKilled int // 已消灭僵尸数量
	PlantsPlaced  int // 已种植植物数量

	// 种植模式状态（对应某张卡片处于 Armed）
	IsPlantingMode    bool
	SelectedPlantType components.PlantType
}

// NewGameState 创建新的游戏状态
func NewGameState(initialSun int) *GameState {
	return &GameState{
		SessionID: uuid.New(),
		Sun:       initialSun,
		Phase:     PhaseWaitingToStart,
	}
}

// AddSun 增加阳光，带上限检查
func (gs *GameState) AddSun(amount int) {
	gs.Sun += amount
	if gs.Sun > MaxSun {
		gs.Sun = MaxSun
	}
}

// SpendSun 扣除阳光，如果阳光不足返回 false
// 只有当阳光充足时才会扣除，否则返回false表示操作失败
func (gs *GameState) SpendSun(amount int) bool {
	if gs.Sun < amount {
		return false
	}
	gs.Sun -= amount
	return true
}

// GetSun 返回当前阳光值
func (gs *GameState) GetSun() int {
	return gs.Sun
}

// Start 从等待阶段进入进行阶段
func (gs *GameState) Start() {
	if gs.Phase != PhaseWaitingToStart {
		return
	}
	gs.Phase = PhaseRunning
	log.Printf("[GameState] Session %s started", gs.SessionID)
}

// End 结束游戏，只有第一次调用生效
func (gs *GameState) End(win bool) {
	if gs.Phase != PhaseRunning {
		return
	}
	gs.Phase = PhaseEnded
	gs.Won = win
	log.Printf("[GameState] Session %s ended: win=%v, elapsed=%.1fs, killed=%d", gs.SessionID, win, gs.Elapsed, gs.ZombiesKilled)
}

// IsRunning 是否处于进行阶段
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// Advance 推进游戏时间
func (gs *GameState) Advance(dt float64) {
	if gs.Phase == PhaseRunning {
		gs.Elapsed += dt
	}
}

// IncrementZombiesKilled 增加消灭计数
func (gs *GameState) IncrementZombiesKilled() {
	gs.ZombiesKilled++
}

// EnterPlantingMode 进入种植模式
func (gs *GameState) EnterPlantingMode(plantType components.PlantType) {
	gs.IsPlantingMode = true
	gs.SelectedPlantType = plantType
}

// ExitPlantingMode 退出种植模式
func (gs *GameState) ExitPlantingMode() {
	gs.IsPlantingMode = false
}

// GetPlantingMode 获取当前种植模式状态
func (gs *GameState) GetPlantingMode() (bool, components.PlantType) {
	return gs.IsPlantingMode, gs.SelectedPlantType
}
