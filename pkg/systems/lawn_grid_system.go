package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/utils"
)

// 草坪占用错误
var (
	// ErrCellOccupied 格子已被其他植物占用
	ErrCellOccupied = errors.New("grid cell already occupied")
	// ErrCellEmpty 格子本来就是空的
	ErrCellEmpty = errors.New("grid cell already empty")
	// ErrOutOfBounds 位置不在草坪范围内
	ErrOutOfBounds = errors.New("grid position out of bounds")
)

// LawnGridSystem 管理草坪网格的占用状态（格子 -> 植物）
// 负责跟踪哪些格子已被植物占用，并提供查询和更新方法
//
// 只在植物创建/死亡时调用（事件驱动），不参与每帧更新
// 所有接口都会先把输入四舍五入到最近的格子
type LawnGridSystem struct {
	entityManager *ecs.EntityManager
	gridEntity    ecs.EntityID
}

// NewLawnGridSystem 创建草坪网格系统，同时创建草坪网格实体（所有格子初始为空）
func NewLawnGridSystem(em *ecs.EntityManager) *LawnGridSystem {
	gridEntity := em.CreateEntity()
	ecs.AddComponent(em, gridEntity, &components.LawnGridComponent{})

	return &LawnGridSystem{
		entityManager: em,
		gridEntity:    gridEntity,
	}
}

// GridEntity 返回草坪网格实体ID
func (s *LawnGridSystem) GridEntity() ecs.EntityID {
	return s.gridEntity
}

// grid 获取占用表，网格实体由构造函数创建，缺失说明实体被错误删除
func (s *LawnGridSystem) grid() *components.LawnGridComponent {
	grid, ok := ecs.GetComponent[*components.LawnGridComponent](s.entityManager, s.gridEntity)
	if !ok {
		log.Panicf("[LawnGridSystem] ❌ LawnGridComponent missing from grid entity %d", s.gridEntity)
	}
	return grid
}

// AddPlant 记录格子被植物占用
// 格子已被占用时大声报错（日志 + 返回 ErrCellOccupied），占用表保持不变
func (s *LawnGridSystem) AddPlant(pos utils.GridPos, plantEntity ecs.EntityID) error {
	tile := pos.Tile()
	if !tile.InBounds() {
		log.Printf("[LawnGridSystem] ❌ AddPlant out of bounds: col=%d, row=%d", tile.Col, tile.Row)
		return fmt.Errorf("add plant %d at (%d, %d): %w", plantEntity, tile.Col, tile.Row, ErrOutOfBounds)
	}

	grid := s.grid()
	if occupant := grid.Occupancy[tile.Row][tile.Col]; occupant != 0 {
		log.Printf("[LawnGridSystem] ❌ Double occupancy: cell (%d, %d) held by %d, rejected %d",
			tile.Col, tile.Row, occupant, plantEntity)
		return fmt.Errorf("add plant %d at (%d, %d), held by %d: %w", plantEntity, tile.Col, tile.Row, occupant, ErrCellOccupied)
	}

	grid.Occupancy[tile.Row][tile.Col] = plantEntity
	log.Printf("[LawnGridSystem] Cell (%d, %d) occupied by plant %d", tile.Col, tile.Row, plantEntity)
	return nil
}

// RemovePlant 清空格子的占用状态
// 格子本来就是空的时大声报错（日志 + 返回 ErrCellEmpty）
func (s *LawnGridSystem) RemovePlant(pos utils.GridPos) error {
	tile := pos.Tile()
	if !tile.InBounds() {
		log.Printf("[LawnGridSystem] ❌ RemovePlant out of bounds: col=%d, row=%d", tile.Col, tile.Row)
		return fmt.Errorf("remove plant at (%d, %d): %w", tile.Col, tile.Row, ErrOutOfBounds)
	}

	grid := s.grid()
	if grid.Occupancy[tile.Row][tile.Col] == 0 {
		log.Printf("[LawnGridSystem] ❌ RemovePlant on empty cell (%d, %d)", tile.Col, tile.Row)
		return fmt.Errorf("remove plant at (%d, %d): %w", tile.Col, tile.Row, ErrCellEmpty)
	}

	grid.Occupancy[tile.Row][tile.Col] = 0
	log.Printf("[LawnGridSystem] Cell (%d, %d) released", tile.Col, tile.Row)
	return nil
}

// ReleasePlant 植物死亡时释放其格子
// 格子上记录的不是这株植物时报错，不修改占用表
func (s *LawnGridSystem) ReleasePlant(pos utils.GridPos, plantEntity ecs.EntityID) error {
	occupant, ok := s.QueryAt(pos)
	if ok && occupant != plantEntity {
		tile := pos.Tile()
		log.Printf("[LawnGridSystem] ❌ Cell (%d, %d) held by %d, not by dying plant %d", tile.Col, tile.Row, occupant, plantEntity)
		return fmt.Errorf("release plant %d at (%d, %d), held by %d: %w", plantEntity, tile.Col, tile.Row, occupant, ErrCellOccupied)
	}
	return s.RemovePlant(pos)
}

// QueryAt 查询格子上的植物
// 空格子或草坪外的位置返回 (0, false)
func (s *LawnGridSystem) QueryAt(pos utils.GridPos) (ecs.EntityID, bool) {
	tile := pos.Tile()
	if !tile.InBounds() {
		return 0, false
	}
	occupant := s.grid().Occupancy[tile.Row][tile.Col]
	return occupant, occupant != 0
}

// IsOccupied 检查指定格子是否已被占用
// 草坪外的位置视为"已占用"，防止种植
func (s *LawnGridSystem) IsOccupied(col, row int) bool {
	if !s.isValidGridPosition(col, row) {
		return true
	}
	return s.grid().Occupancy[row][col] != 0
}

// OccupiedCount 返回已被占用的格子数量
func (s *LawnGridSystem) OccupiedCount() int {
	count := 0
	grid := s.grid()
	for row := range grid.Occupancy {
		for col := range grid.Occupancy[row] {
			if grid.Occupancy[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

// isValidGridPosition 检查网格位置是否有效
func (s *LawnGridSystem) isValidGridPosition(col, row int) bool {
	return col >= 0 && col < config.GridColumns && row >= 0 && row < config.GridRows
}
