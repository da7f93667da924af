package models

import (
	"context"
	"errors"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/utils"
	"github.com/shopspring/decimal"
)

// Asset is a physical asset in the park registry. The finance engine treats
// it as read-only source data; PurchasePrice of zero (or less) means the
// asset has nothing to post.
type Asset struct {
	ID            int             `gorm:"primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Description   string          `gorm:"type:text" json:"description"`
	ParkId        int             `gorm:"index;not null" json:"park_id" binding:"required"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"purchase_price"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	InvoiceNumber string          `gorm:"size:255" json:"invoice_number"`
	IsPaid        *bool           `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAsset struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	ParkId        int             `json:"park_id" binding:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	InvoiceNumber string          `json:"invoice_number"`
	IsPaid        *bool           `json:"is_paid"`
}

func (input *NewAsset) validate(ctx context.Context) error {
	if err := utils.ValidateResourceId[Park](ctx, input.ParkId); err != nil {
		return errors.New("park not found")
	}
	if input.PurchasePrice.IsNegative() {
		return errors.New("purchase price must not be negative")
	}
	return nil
}

func CreateAsset(ctx context.Context, input *NewAsset) (*Asset, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	isPaid := false
	if input.IsPaid != nil && *input.IsPaid {
		isPaid = true
	}

	asset := Asset{
		Name:          input.Name,
		Description:   input.Description,
		ParkId:        input.ParkId,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		InvoiceNumber: input.InvoiceNumber,
		IsPaid:        &isPaid,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

func UpdateAsset(ctx context.Context, id int, input *NewAsset) (*Asset, error) {
	if _, err := utils.FetchModel[Asset](ctx, id); err != nil {
		return nil, err
	}
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	isPaid := false
	if input.IsPaid != nil && *input.IsPaid {
		isPaid = true
	}

	update := Asset{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		ParkId:        input.ParkId,
		PurchasePrice: input.PurchasePrice,
		PurchaseDate:  input.PurchaseDate,
		InvoiceNumber: input.InvoiceNumber,
		IsPaid:        &isPaid,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&update).Updates(map[string]interface{}{
		"Name":          update.Name,
		"Description":   update.Description,
		"ParkId":        update.ParkId,
		"PurchasePrice": update.PurchasePrice,
		"PurchaseDate":  update.PurchaseDate,
		"InvoiceNumber": update.InvoiceNumber,
		"IsPaid":        update.IsPaid,
	}).Error
	if err != nil {
		return nil, err
	}

	return &update, nil
}

func GetAsset(ctx context.Context, id int) (*Asset, error) {
	return utils.FetchModel[Asset](ctx, id)
}

func PaginateAssets(ctx context.Context, limit int, page int, parkId *int) ([]*Asset, int64, error) {
	if limit <= 0 {
		limit = config.SearchLimit
	}
	if page <= 0 {
		page = 1
	}

	db := config.GetDB().WithContext(ctx).Model(&Asset{})
	if parkId != nil && *parkId > 0 {
		db = db.Where("park_id = ?", *parkId)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assets []*Asset
	err := db.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&assets).Error
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}
