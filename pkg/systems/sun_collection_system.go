package systems

import (
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/game"
)

// SunCollectionSystem 处理阳光的点击收集
type SunCollectionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewSunCollectionSystem 创建阳光收集系统
func NewSunCollectionSystem(em *ecs.EntityManager, gs *game.GameState) *SunCollectionSystem {
	return &SunCollectionSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// CollectAt 收集点击位置上的阳光（最多一个，后生成的优先，与绘制顺序一致）
// 返回是否收集成功
func (s *SunCollectionSystem) CollectAt(worldX, worldY float64) bool {
	suns := ecs.GetEntitiesWith3[*components.SunComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager)

	for i := len(suns) - 1; i >= 0; i-- {
		id := suns[i]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.Contains(pos.X, pos.Y, worldX, worldY) {
			continue
		}

		sun, _ := ecs.GetComponent[*components.SunComponent](s.entityManager, id)
		clickable.IsEnabled = false
		s.gameState.AddSun(sun.Value)
		s.entityManager.DestroyEntity(id)

		log.Printf("[SunCollectionSystem] Sun %d collected (+%d), total: %d", id, sun.Value, s.gameState.GetSun())
		return true
	}
	return false
}
