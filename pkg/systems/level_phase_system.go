package systems

import (
	"log"

	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/game"
)

// LevelPhaseSystem 胜利判定：存活达到 WinAfter 秒时结束游戏（胜利）
type LevelPhaseSystem struct {
	gameState *game.GameState
	winAfter  float64
}

// NewLevelPhaseSystem 创建胜利判定系统
func NewLevelPhaseSystem(gs *game.GameState, rules config.RulesConfig) *LevelPhaseSystem {
	return &LevelPhaseSystem{
		gameState: gs,
		winAfter:  rules.WinAfter,
	}
}

// Update 检查是否已存活足够长时间
func (s *LevelPhaseSystem) Update() {
	if !s.gameState.IsRunning() {
		return
	}
	if s.gameState.Elapsed >= s.winAfter {
		log.Printf("[LevelPhaseSystem] Survived %.1fs, level complete", s.gameState.Elapsed)
		s.gameState.End(true)
	}
}
