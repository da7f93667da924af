package models_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	config.SetDB(db)
	models.MigrateTable()

	t.Cleanup(func() {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		config.SetDB(nil)
	})

	return db
}

func seedPark(t *testing.T, ctx context.Context, name string) *models.Park {
	t.Helper()
	isActive := true
	park := models.Park{Name: name, Municipality: "Guadalajara", IsActive: &isActive}
	if err := config.GetDB().WithContext(ctx).Create(&park).Error; err != nil {
		t.Fatalf("seed park: %v", err)
	}
	return &park
}
