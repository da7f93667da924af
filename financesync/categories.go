package financesync

import (
	"context"
	"errors"
	"fmt"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"gorm.io/gorm"
)

// CategoryKind is the closed set of ledger categories the engine provisions.
// Mapping kinds to canonical names here keeps the rest of the engine free of
// magic strings.
type CategoryKind int

const (
	CategoryPurchase CategoryKind = iota
	CategoryMaintenance
	CategoryRepair
	CategoryDepreciation
	CategoryInsurance
	CategoryReplacement
)

type categoryDef struct {
	name        string
	description string
}

var categoryDefs = map[CategoryKind]categoryDef{
	CategoryPurchase:     {"Asset Purchase", "Expenses for park asset acquisitions"},
	CategoryMaintenance:  {"Asset Maintenance", "Expenses for completed asset maintenance work"},
	CategoryRepair:       {"Asset Repair", "Expenses for asset repairs outside maintenance plans"},
	CategoryDepreciation: {"Asset Depreciation", "Periodic depreciation of park assets"},
	CategoryInsurance:    {"Asset Insurance", "Insurance premiums for park assets"},
	CategoryReplacement:  {"Asset Replacement", "Replacement of retired park assets"},
}

func (k CategoryKind) Name() string {
	return categoryDefs[k].name
}

// GetOrCreateCategory provisions the canonical category for a kind.
// Safe under concurrent first-use across service instances: the unique index
// on expense_categories.name decides the winner, losers re-read. No
// in-process cache; a lookup per call is cheap and never goes stale.
func GetOrCreateCategory(ctx context.Context, kind CategoryKind) (*models.ExpenseCategory, error) {
	def, ok := categoryDefs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown category kind: %d", kind)
	}

	db := config.GetDB().WithContext(ctx)

	var existing models.ExpenseCategory
	err := db.Where("name = ?", def.name).Take(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isActive := true
	category := models.ExpenseCategory{
		Name:        def.name,
		Description: def.description,
		IsActive:    &isActive,
	}
	err = db.Create(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Lost the race; the concurrent insert's row is the canonical one.
	if err := db.Where("name = ?", def.name).Take(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
