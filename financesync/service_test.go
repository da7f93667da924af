package financesync_test

import (
	"context"
	"testing"
	"time"

	"github.com/aspal-sistemas/parksys_backend/financesync"
	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/shopspring/decimal"
)

func TestSyncAssetPurchase(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Metropolitano")
	asset := seedAsset(t, ctx, park.ID, "Playground Set", "8500.00", dateOf(2024, time.May, 12))

	entry, err := financesync.SyncAssetPurchase(ctx, asset)
	if err != nil {
		t.Fatalf("SyncAssetPurchase: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a ledger entry")
	}
	if entry.SourceAssetId == nil || *entry.SourceAssetId != asset.ID {
		t.Errorf("sourceAssetId = %v, want %d", entry.SourceAssetId, asset.ID)
	}
	if !entry.Amount.Equal(decimal.RequireFromString("8500.00")) {
		t.Errorf("amount = %s, want 8500.00", entry.Amount)
	}

	// The canonical category is provisioned as a side effect.
	category, err := models.GetExpenseCategoryByName(ctx, "Asset Purchase")
	if err != nil {
		t.Fatalf("category lookup: %v", err)
	}
	if entry.CategoryId != category.ID {
		t.Errorf("categoryId = %d, want %d", entry.CategoryId, category.ID)
	}
}

func TestSyncAssetPurchaseIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Norte")
	asset := seedAsset(t, ctx, park.ID, "Bench", "1500.00", dateOf(2024, time.March, 1))

	if _, err := financesync.SyncAssetPurchase(ctx, asset); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if _, err := financesync.SyncAssetPurchase(ctx, asset); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if n := countExpenses(t, ctx, "source_asset_id = ?", asset.ID); n != 1 {
		t.Errorf("entry count = %d, want 1", n)
	}
}

func TestSyncAssetPurchaseZeroPrice(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Sur")
	asset := seedAsset(t, ctx, park.ID, "Donated Tree", "0", nil)

	entry, err := financesync.SyncAssetPurchase(ctx, asset)
	if err != nil {
		t.Fatalf("SyncAssetPurchase: %v", err)
	}
	if entry != nil {
		t.Fatalf("zero-price asset must not post, got %+v", entry)
	}
	if n := countExpenses(t, ctx, ""); n != 0 {
		t.Errorf("expense count = %d, want 0", n)
	}
}

func TestSyncMaintenance(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Oriente")
	asset := seedAsset(t, ctx, park.ID, "Fountain", "0", nil)
	maintenance := seedCompletedMaintenance(t, ctx, asset.ID, models.MaintenanceTypeCorrective, "420.50",
		time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC))

	entry, err := financesync.SyncMaintenance(ctx, maintenance)
	if err != nil {
		t.Fatalf("SyncMaintenance: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a ledger entry")
	}
	if entry.SourceMaintenanceId == nil || *entry.SourceMaintenanceId != maintenance.ID {
		t.Errorf("sourceMaintenanceId = %v, want %d", entry.SourceMaintenanceId, maintenance.ID)
	}
	if entry.Month != 8 || entry.Year != 2024 {
		t.Errorf("month/year = %d/%d, want 8/2024", entry.Month, entry.Year)
	}

	// Re-trigger is harmless.
	if _, err := financesync.SyncMaintenance(ctx, maintenance); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if n := countExpenses(t, ctx, "source_maintenance_id = ?", maintenance.ID); n != 1 {
		t.Errorf("entry count = %d, want 1", n)
	}
}

func TestSyncMaintenanceNotCompleted(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Poniente")
	asset := seedAsset(t, ctx, park.ID, "Gate", "0", nil)
	maintenance, err := models.CreateMaintenance(ctx, &models.NewMaintenance{
		AssetId: asset.ID,
		Type:    models.MaintenanceTypePreventive,
		Cost:    decimal.RequireFromString("100"),
	})
	if err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}

	entry, err := financesync.SyncMaintenance(ctx, maintenance)
	if err != nil {
		t.Fatalf("SyncMaintenance: %v", err)
	}
	if entry != nil {
		t.Fatal("scheduled maintenance must not post")
	}
}
