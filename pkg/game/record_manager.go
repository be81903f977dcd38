package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "lifetime"

	// maxRecentRuns 保留的最近对局数量
	maxRecentRuns = 10
)

// RunRecord 单局战绩
type RunRecord struct {
	SessionID     string    `yaml:"sessionId"`
	Won           bool      `yaml:"won"`
	Survived      float64   `yaml:"survived"` // 存活时间（秒）
	ZombiesKilled int       `yaml:"zombiesKilled"`
	PlantsPlaced  int       `yaml:"plantsPlaced"`
	FinishedAt    time.Time `yaml:"finishedAt"`
}

// GameRecords 累计战绩（不是对局存档，只记录结果）
type GameRecords struct {
	Wins               int         `yaml:"wins"`
	Losses             int         `yaml:"losses"`
	BestSurvival       float64     `yaml:"bestSurvival"`
	TotalZombiesKilled int         `yaml:"totalZombiesKilled"`
	RecentRuns         []RunRecord `yaml:"recentRuns"`
}

// RecordManager 战绩管理器
// 负责累计战绩的加载、更新和保存
type RecordManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
	records      *GameRecords
}

// NewRecordManager 创建战绩管理器并尝试加载已保存的战绩
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		records:      &GameRecords{},
	}

	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，从空战绩开始
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载战绩
func (rm *RecordManager) Load() error {
	if rm.gdataManager == nil {
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded GameRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordManager] Records loaded: wins=%d losses=%d best=%.1fs", loaded.Wins, loaded.Losses, loaded.BestSurvival)
	return nil
}

// Save 保存战绩到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordManager] Records saved")
	return nil
}

// RecordRun 记录一局已结束的游戏并保存
// 未结束的对局会被忽略
func (rm *RecordManager) RecordRun(gs *GameState) error {
	if gs.Phase != PhaseEnded {
		return fmt.Errorf("session %s has not ended (phase=%v)", gs.SessionID, gs.Phase)
	}

	r := rm.records
	if gs.Won {
		r.Wins++
	} else {
		r.Losses++
	}
	if gs.Elapsed > r.BestSurvival {
		r.BestSurvival = gs.Elapsed
	}
	r.TotalZombiesKilled += gs.ZombiesKilled

	r.RecentRuns = append(r.RecentRuns, RunRecord{
		SessionID:     gs.SessionID.String(),
		Won:           gs.Won,
		Survived:      gs.Elapsed,
		ZombiesKilled: gs.ZombiesKilled,
		PlantsPlaced:  gs.PlantsPlaced,
		FinishedAt:    time.Now().UTC(),
	})
	if len(r.RecentRuns) > maxRecentRuns {
		r.RecentRuns = r.RecentRuns[len(r.RecentRuns)-maxRecentRuns:]
	}

	return rm.Save()
}

// GetRecords 获取当前战绩
func (rm *RecordManager) GetRecords() *GameRecords {
	return rm.records
}
