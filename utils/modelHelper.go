package utils

import (
	"context"
	"errors"

	"github.com/aspal-sistemas/parksys_backend/config"
	"gorm.io/gorm"
)

func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	if id <= 0 {
		return nil, ErrorRecordNotFound
	}
	db := config.GetDB().WithContext(ctx)
	for _, association := range associations {
		db = db.Preload(association)
	}
	var result T
	if err := db.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrorRecordNotFound
		}
		return nil, err
	}
	return &result, nil
}

func FetchAllModels[T any](ctx context.Context, associations ...string) ([]*T, error) {
	db := config.GetDB().WithContext(ctx)
	for _, association := range associations {
		db = db.Preload(association)
	}
	var results []*T
	if err := db.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func ValidateResourceId[T any](ctx context.Context, id int) error {
	if id <= 0 {
		return ErrorRecordNotFound
	}
	var count int64
	err := config.GetDB().WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrorRecordNotFound
	}
	return nil
}

func ResourceCountWhere[T any](ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := config.GetDB().WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error
	return count, err
}
