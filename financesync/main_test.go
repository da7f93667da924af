package financesync_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tests run against an in-memory SQLite database. SQLite and MySQL agree on
// the semantics the engine depends on: unique indexes ignore NULLs, and
// duplicate-key errors translate to gorm.ErrDuplicatedKey.
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

func seedAsset(t *testing.T, ctx context.Context, parkId int, name string, price string, purchaseDate *time.Time) *models.Asset {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price %q: %v", price, err)
	}
	asset, err := models.CreateAsset(ctx, &models.NewAsset{
		Name:          name,
		ParkId:        parkId,
		PurchasePrice: amount,
		PurchaseDate:  purchaseDate,
	})
	if err != nil {
		t.Fatalf("seed asset %q: %v", name, err)
	}
	return asset
}

func seedCompletedMaintenance(t *testing.T, ctx context.Context, assetId int, mType models.MaintenanceType, cost string, completed time.Time) *models.Maintenance {
	t.Helper()
	amount, err := decimal.NewFromString(cost)
	if err != nil {
		t.Fatalf("parse cost %q: %v", cost, err)
	}
	maintenance, err := models.CreateMaintenance(ctx, &models.NewMaintenance{
		AssetId: assetId,
		Type:    mType,
		Cost:    amount,
	})
	if err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}
	maintenance, err = models.CompleteMaintenance(ctx, maintenance.ID, &completed, nil)
	if err != nil {
		t.Fatalf("complete maintenance: %v", err)
	}
	return maintenance
}

func countExpenses(t *testing.T, ctx context.Context, query string, args ...any) int64 {
	t.Helper()
	var count int64
	db := config.GetDB().WithContext(ctx).Model(&models.ActualExpense{})
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Count(&count).Error; err != nil {
		t.Fatalf("count expenses: %v", err)
	}
	return count
}

func dateOf(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
