package systems

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/config"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/utils"
)

// ErrZombieNotTracked 僵尸不在该行的索引中
var ErrZombieNotTracked = errors.New("zombie not tracked in row")

// LaneIndexSystem 管理每行的僵尸索引（行 -> 僵尸列表）
//
// 僵尸创建时加入、死亡时移除，列表按生成顺序排列
// 僵尸的位置每帧都在变化而索引成员不变，所以 IsRowClear 每次调用都重新检查位置
type LaneIndexSystem struct {
	entityManager *ecs.EntityManager
	laneEntity    ecs.EntityID
	biteOffset    float64 // 啃咬点在僵尸中心左侧的距离，与僵尸行为使用同一个值
}

// NewLaneIndexSystem 创建行索引系统，同时创建索引实体
func NewLaneIndexSystem(em *ecs.EntityManager, biteOffset float64) *LaneIndexSystem {
	laneEntity := em.CreateEntity()
	ecs.AddComponent(em, laneEntity, &components.LaneZombiesComponent{})

	return &LaneIndexSystem{
		entityManager: em,
		laneEntity:    laneEntity,
		biteOffset:    biteOffset,
	}
}

func (s *LaneIndexSystem) lanes() *components.LaneZombiesComponent {
	lanes, ok := ecs.GetComponent[*components.LaneZombiesComponent](s.entityManager, s.laneEntity)
	if !ok {
		log.Panicf("[LaneIndexSystem] ❌ LaneZombiesComponent missing from entity %d", s.laneEntity)
	}
	return lanes
}

func isValidRow(row int) bool {
	return row >= 0 && row < config.GridRows
}

// AddZombie 将僵尸追加到该行列表末尾
func (s *LaneIndexSystem) AddZombie(row int, zombieID ecs.EntityID) error {
	if !isValidRow(row) {
		log.Printf("[LaneIndexSystem] ❌ AddZombie: row %d out of range (zombie %d)", row, zombieID)
		return fmt.Errorf("add zombie %d to row %d: %w", zombieID, row, ErrOutOfBounds)
	}

	lanes := s.lanes()
	if slices.Contains(lanes.Rows[row], zombieID) {
		log.Printf("[LaneIndexSystem] ❌ Zombie %d already tracked in row %d", zombieID, row)
		return fmt.Errorf("add zombie %d to row %d: already tracked", zombieID, row)
	}

	lanes.Rows[row] = append(lanes.Rows[row], zombieID)
	return nil
}

// RemoveZombie 按身份从该行列表中移除僵尸，保持其余僵尸的顺序
func (s *LaneIndexSystem) RemoveZombie(row int, zombieID ecs.EntityID) error {
	if !isValidRow(row) {
		log.Printf("[LaneIndexSystem] ❌ RemoveZombie: row %d out of range (zombie %d)", row, zombieID)
		return fmt.Errorf("remove zombie %d from row %d: %w", zombieID, row, ErrOutOfBounds)
	}

	lanes := s.lanes()
	idx := slices.Index(lanes.Rows[row], zombieID)
	if idx < 0 {
		log.Printf("[LaneIndexSystem] ❌ Zombie %d not tracked in row %d", zombieID, row)
		return fmt.Errorf("remove zombie %d from row %d: %w", zombieID, row, ErrZombieNotTracked)
	}

	lanes.Rows[row] = slices.Delete(lanes.Rows[row], idx, idx+1)
	return nil
}

// ZombiesInRow 返回该行的僵尸列表（生成顺序），调用方不得修改
func (s *LaneIndexSystem) ZombiesInRow(row int) []ecs.EntityID {
	if !isValidRow(row) {
		return nil
	}
	return s.lanes().Rows[row]
}

// IsRowClear 该行所有被追踪的僵尸是否都在草坪范围外
// 中心或啃咬点任一落在草坪格子内即视为在场：僵尸中心还在右边界外时已经可以啃食第 8 列的植物
// 索引中的僵尸必须存在 PositionComponent，否则说明索引已失步，直接 panic
func (s *LaneIndexSystem) IsRowClear(row int) bool {
	for _, zombieID := range s.ZombiesInRow(row) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, zombieID)
		if !ok {
			log.Panicf("[LaneIndexSystem] ❌ Zombie %d in row %d has no position (index out of sync)", zombieID, row)
		}
		if s.isPresent(pos) {
			return false
		}
	}
	return true
}

// isPresent 僵尸中心或啃咬点是否在草坪格子内
func (s *LaneIndexSystem) isPresent(pos *components.PositionComponent) bool {
	return utils.IsWorldPosOnGrid(pos.X, pos.Y) || utils.IsWorldPosOnGrid(pos.X-s.biteOffset, pos.Y)
}

// TotalZombies 返回所有行的僵尸总数
func (s *LaneIndexSystem) TotalZombies() int {
	total := 0
	for _, row := range s.lanes().Rows {
		total += len(row)
	}
	return total
}
