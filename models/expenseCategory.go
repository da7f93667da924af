package models

import (
	"context"
	"errors"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/utils"
	"gorm.io/gorm"
)

// ExpenseCategory rows for canonical purposes are provisioned lazily by the
// finance engine and never updated by it afterwards. The unique index on
// name is what makes concurrent first-use safe.
type ExpenseCategory struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetExpenseCategory(ctx context.Context, id int) (*ExpenseCategory, error) {
	return utils.FetchModel[ExpenseCategory](ctx, id)
}

func GetExpenseCategories(ctx context.Context) ([]*ExpenseCategory, error) {
	return utils.FetchAllModels[ExpenseCategory](ctx)
}

func GetExpenseCategoryByName(ctx context.Context, name string) (*ExpenseCategory, error) {
	db := config.GetDB().WithContext(ctx)
	var category ExpenseCategory
	err := db.Where("name = ?", name).Take(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &category, nil
}
