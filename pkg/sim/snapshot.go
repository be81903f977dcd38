package sim

import (
	"github.com/decker502/pvz-core/pkg/components"
	"github.com/decker502/pvz-core/pkg/ecs"
	"github.com/decker502/pvz-core/pkg/game"
)

// EntityKind 快照中的实体类别
type EntityKind string

const (
	KindPlant      EntityKind = "plant"
	KindZombie     EntityKind = "zombie"
	KindProjectile EntityKind = "projectile"
	KindSun        EntityKind = "sun"
	KindPreview    EntityKind = "preview"
)

// EntitySnapshot 渲染层需要的单个实体状态
type EntitySnapshot struct {
	ID      ecs.EntityID
	Kind    EntityKind
	Variant string // 植物/僵尸类型名
	X, Y    float64
	Row     int

	Health    float64
	MaxHealth float64
	State     string // 僵尸：walking / eating

	Valid bool // 预览：当前格子是否可以种植

	Asset components.AssetHandle
}

// CardSnapshot 工具栏卡片状态
type CardSnapshot struct {
	Index        int
	Plant        string
	Cost         int
	Available    bool
	Armed        bool
	CooldownText string // 剩余冷却秒数，冷却结束时为空
}

// Snapshot 一帧结束时的只读状态
type Snapshot struct {
	Phase         game.GamePhase
	Won           bool
	Sun           int
	Elapsed       float64
	ZombiesKilled int
	PlantsPlaced  int

	Entities []EntitySnapshot // 按绘制顺序：植物、僵尸、子弹、阳光、预览
	Cards    []CardSnapshot
}

// Snapshot 导出当前状态
func (s *Simulation) Snapshot() Snapshot {
	gs := s.gameState
	snap := Snapshot{
		Phase:         gs.Phase,
		Won:           gs.Won,
		Sun:           gs.GetSun(),
		Elapsed:       gs.Elapsed,
		ZombiesKilled: gs.ZombiesKilled,
		PlantsPlaced:  gs.PlantsPlaced,
	}

	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.PlantComponent, *components.PositionComponent](em) {
		plant, _ := ecs.GetComponent[*components.PlantComponent](em, id)
		e := s.baseSnapshot(id, KindPlant)
		e.Variant = plant.PlantType.String()
		e.Row = plant.GridRow
		snap.Entities = append(snap.Entities, e)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ZombieComponent, *components.PositionComponent](em) {
		zombie, _ := ecs.GetComponent[*components.ZombieComponent](em, id)
		e := s.baseSnapshot(id, KindZombie)
		e.Variant = zombie.ZombieType.String()
		e.Row = zombie.Row
		e.State = zombie.State.String()
		snap.Entities = append(snap.Entities, e)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		e := s.baseSnapshot(id, KindProjectile)
		e.Row = proj.Row
		snap.Entities = append(snap.Entities, e)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SunComponent, *components.PositionComponent](em) {
		snap.Entities = append(snap.Entities, s.baseSnapshot(id, KindSun))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PlantPreviewComponent, *components.PositionComponent](em) {
		preview, _ := ecs.GetComponent[*components.PlantPreviewComponent](em, id)
		e := s.baseSnapshot(id, KindPreview)
		e.Variant = preview.PlantType.String()
		e.Row = preview.TargetRow
		e.Valid = preview.TargetValid
		snap.Entities = append(snap.Entities, e)
	}

	for _, id := range s.cards {
		card, ok := ecs.GetComponent[*components.PlantCardComponent](em, id)
		if !ok {
			continue
		}
		snap.Cards = append(snap.Cards, CardSnapshot{
			Index:        card.Index,
			Plant:        card.PlantType.String(),
			Cost:         card.SunCost,
			Available:    card.IsAvailable,
			Armed:        card.State == components.CardArmed,
			CooldownText: card.CooldownText(),
		})
	}

	return snap
}

func (s *Simulation) baseSnapshot(id ecs.EntityID, kind EntityKind) EntitySnapshot {
	em := s.entityManager
	e := EntitySnapshot{ID: id, Kind: kind}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		e.X, e.Y = pos.X, pos.Y
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
		e.Health, e.MaxHealth = health.CurrentHealth, health.MaxHealth
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		e.Asset = sprite.Asset
	}
	return e
}

// CountKind 统计快照中某类实体的数量
func (snap Snapshot) CountKind(kind EntityKind) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
