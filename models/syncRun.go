package models

import (
	"context"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
)

// FinanceSyncRun is the persisted record of one reconciliation run. The run
// itself holds no state the scanner depends on; it exists so operators can
// see what a run did and which records still need attention.
type FinanceSyncRun struct {
	ID            int        `gorm:"primary_key" json:"id"`
	Status        string     `gorm:"size:20;not null;index" json:"status"`
	TriggeredBy   string     `gorm:"size:20" json:"triggered_by"`
	CorrelationId string     `gorm:"size:64;index" json:"correlation_id"`
	Processed     int        `json:"processed"`
	Synced        int        `json:"synced"`
	ErrorCount    int        `json:"error_count"`
	StatsJSON     []byte     `gorm:"type:json" json:"stats"`
	StartedAt     *time.Time `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at"`
	DurationMs    int64      `json:"duration_ms"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// FinanceSyncError is one failed item of a run.
type FinanceSyncError struct {
	ID         int       `gorm:"primary_key" json:"id"`
	SyncRunId  int       `gorm:"index;not null" json:"sync_run_id"`
	EntityType string    `gorm:"size:50" json:"entity_type"`
	SourceId   int       `gorm:"index" json:"source_id"`
	ErrorCode  string    `gorm:"size:64" json:"error_code"`
	Message    string    `gorm:"type:text" json:"message"`
	Retryable  bool      `gorm:"default:false" json:"retryable"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func PaginateFinanceSyncRuns(ctx context.Context, limit int, page int) ([]*FinanceSyncRun, int64, error) {
	if limit <= 0 {
		limit = config.SearchLimit
	}
	if page <= 0 {
		page = 1
	}

	db := config.GetDB().WithContext(ctx).Model(&FinanceSyncRun{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []*FinanceSyncRun
	err := db.Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

func GetFinanceSyncErrors(ctx context.Context, syncRunId int) ([]*FinanceSyncError, error) {
	var errs []*FinanceSyncError
	err := config.GetDB().WithContext(ctx).
		Where("sync_run_id = ?", syncRunId).
		Order("id ASC").
		Find(&errs).Error
	if err != nil {
		return nil, err
	}
	return errs, nil
}
