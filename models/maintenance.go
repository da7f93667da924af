package models

import (
	"context"
	"errors"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/utils"
	"github.com/shopspring/decimal"
)

// Maintenance is a maintenance work order on an asset. Only the transition
// to Completed (with a positive cost) is finance-relevant.
type Maintenance struct {
	ID            int               `gorm:"primary_key" json:"id"`
	AssetId       int               `gorm:"index;not null" json:"asset_id" binding:"required"`
	Type          MaintenanceType   `gorm:"size:20;not null" json:"type" binding:"required"`
	Description   string            `gorm:"type:text" json:"description"`
	Cost          decimal.Decimal   `gorm:"type:decimal(20,4);default:0" json:"cost"`
	Status        MaintenanceStatus `gorm:"size:20;not null;index" json:"status"`
	ScheduledDate *time.Time        `json:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMaintenance struct {
	AssetId       int             `json:"asset_id" binding:"required"`
	Type          MaintenanceType `json:"type" binding:"required"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost"`
	ScheduledDate *time.Time      `json:"scheduled_date"`
}

func (input *NewMaintenance) validate(ctx context.Context) error {
	if err := utils.ValidateResourceId[Asset](ctx, input.AssetId); err != nil {
		return errors.New("asset not found")
	}
	if input.Type != MaintenanceTypePreventive && input.Type != MaintenanceTypeCorrective {
		return errors.New("invalid maintenance type")
	}
	if input.Cost.IsNegative() {
		return errors.New("cost must not be negative")
	}
	return nil
}

func CreateMaintenance(ctx context.Context, input *NewMaintenance) (*Maintenance, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	maintenance := Maintenance{
		AssetId:       input.AssetId,
		Type:          input.Type,
		Description:   input.Description,
		Cost:          input.Cost,
		Status:        MaintenanceStatusScheduled,
		ScheduledDate: input.ScheduledDate,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&maintenance).Error; err != nil {
		return nil, err
	}

	return &maintenance, nil
}

// CompleteMaintenance transitions a work order to Completed. The caller is
// expected to run the finance live trigger afterwards; a posting failure
// never rolls this transition back.
func CompleteMaintenance(ctx context.Context, id int, completedDate *time.Time, cost *decimal.Decimal) (*Maintenance, error) {
	maintenance, err := utils.FetchModel[Maintenance](ctx, id)
	if err != nil {
		return nil, err
	}
	if maintenance.Status == MaintenanceStatusCompleted {
		return nil, errors.New("maintenance already completed")
	}

	now := time.Now()
	if completedDate == nil {
		completedDate = &now
	}

	updates := map[string]interface{}{
		"Status":        MaintenanceStatusCompleted,
		"CompletedDate": completedDate,
	}
	if cost != nil {
		if cost.IsNegative() {
			return nil, errors.New("cost must not be negative")
		}
		updates["Cost"] = *cost
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(maintenance).Updates(updates).Error; err != nil {
		return nil, err
	}

	maintenance.Status = MaintenanceStatusCompleted
	maintenance.CompletedDate = completedDate
	if cost != nil {
		maintenance.Cost = *cost
	}

	return maintenance, nil
}

func GetMaintenance(ctx context.Context, id int) (*Maintenance, error) {
	return utils.FetchModel[Maintenance](ctx, id)
}

func PaginateMaintenances(ctx context.Context, limit int, page int, assetId *int, status *MaintenanceStatus) ([]*Maintenance, int64, error) {
	if limit <= 0 {
		limit = config.SearchLimit
	}
	if page <= 0 {
		page = 1
	}

	db := config.GetDB().WithContext(ctx).Model(&Maintenance{})
	if assetId != nil && *assetId > 0 {
		db = db.Where("asset_id = ?", *assetId)
	}
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var maintenances []*Maintenance
	err := db.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&maintenances).Error
	if err != nil {
		return nil, 0, err
	}

	return maintenances, total, nil
}
