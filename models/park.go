package models

import (
	"context"
	"time"

	"github.com/aspal-sistemas/parksys_backend/utils"
)

// Park is owned by the parks module; the finance engine only reads it to
// resolve park context for ledger descriptions.
type Park struct {
	ID           int       `gorm:"primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Municipality string    `gorm:"size:255" json:"municipality"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetPark(ctx context.Context, id int) (*Park, error) {
	return utils.FetchModel[Park](ctx, id)
}

func GetParks(ctx context.Context) ([]*Park, error) {
	return utils.FetchAllModels[Park](ctx)
}
