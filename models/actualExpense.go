package models

import (
	"context"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/shopspring/decimal"
)

// ActualExpense is a posted ledger entry. Entries generated by the asset
// integration engine carry IsAssetGenerated=true and exactly one of
// SourceAssetId / SourceMaintenanceId. The unique indexes on those two
// columns are the dedup invariant: the application-level existence check in
// the writer is only an optimization, the index is the guarantee. NULLs are
// not considered duplicates, so manually captured entries are unaffected.
type ActualExpense struct {
	ID                  int             `gorm:"primary_key" json:"id"`
	Amount              decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Concept             string          `gorm:"size:255;not null" json:"concept"`
	Description         string          `gorm:"type:text" json:"description"`
	CategoryId          int             `gorm:"index;not null" json:"category_id"`
	ExpenseDate         time.Time       `gorm:"not null" json:"expense_date"`
	Month               int             `gorm:"not null;index" json:"month"`
	Year                int             `gorm:"not null;index" json:"year"`
	ReferenceNumber     string          `gorm:"size:255" json:"reference_number"`
	SourceAssetId       *int            `gorm:"uniqueIndex" json:"source_asset_id"`
	SourceMaintenanceId *int            `gorm:"uniqueIndex" json:"source_maintenance_id"`
	IsAssetGenerated    bool            `gorm:"not null;default:false;index" json:"is_asset_generated"`
	IsPaid              *bool           `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaginateAssetExpenses lists engine-generated ledger entries, newest first.
func PaginateAssetExpenses(ctx context.Context, limit int, page int) ([]*ActualExpense, int64, error) {
	if limit <= 0 {
		limit = config.SearchLimit
	}
	if page <= 0 {
		page = 1
	}

	db := config.GetDB().WithContext(ctx).Model(&ActualExpense{}).
		Where("is_asset_generated = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []*ActualExpense
	err := db.Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// FetchAssetExpensesByYear returns all engine-generated entries for a year,
// ordered by month. Used by the stats aggregator and the XLSX export.
func FetchAssetExpensesByYear(ctx context.Context, year int) ([]*ActualExpense, error) {
	var expenses []*ActualExpense
	err := config.GetDB().WithContext(ctx).
		Where("is_asset_generated = ? AND year = ?", true, year).
		Order("month ASC").Order("id ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
