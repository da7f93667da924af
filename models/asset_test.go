package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/shopspring/decimal"
)

func TestCreateAsset(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Central")
	purchaseDate := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	asset, err := models.CreateAsset(ctx, &models.NewAsset{
		Name:          "Bench",
		ParkId:        park.ID,
		PurchasePrice: decimal.RequireFromString("1500.00"),
		PurchaseDate:  &purchaseDate,
		InvoiceNumber: "INV-001",
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.ID == 0 {
		t.Error("asset should get an id")
	}
	if asset.IsPaid == nil || *asset.IsPaid {
		t.Error("isPaid should default to false")
	}

	reloaded, err := models.GetAsset(ctx, asset.ID)
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if !reloaded.PurchasePrice.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("purchasePrice = %s, want 1500.00", reloaded.PurchasePrice)
	}
}

func TestCreateAssetValidation(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Central")

	if _, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "Ghost", ParkId: park.ID + 100,
		PurchasePrice: decimal.RequireFromString("10"),
	}); err == nil {
		t.Error("unknown park must be rejected")
	}

	if _, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "Negative", ParkId: park.ID,
		PurchasePrice: decimal.RequireFromString("-5"),
	}); err == nil {
		t.Error("negative purchase price must be rejected")
	}

	// Zero is a valid price: donated or legacy assets post nothing.
	if _, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "Donated", ParkId: park.ID,
		PurchasePrice: decimal.Zero,
	}); err != nil {
		t.Errorf("zero price should be accepted: %v", err)
	}
}

func TestCompleteMaintenance(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Central")
	asset, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "Fountain", ParkId: park.ID, PurchasePrice: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	maintenance, err := models.CreateMaintenance(ctx, &models.NewMaintenance{
		AssetId: asset.ID,
		Type:    models.MaintenanceTypePreventive,
		Cost:    decimal.RequireFromString("80.00"),
	})
	if err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}
	if maintenance.Status != models.MaintenanceStatusScheduled {
		t.Errorf("status = %q, want Scheduled", maintenance.Status)
	}

	completedDate := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	finalCost := decimal.RequireFromString("95.50")
	completed, err := models.CompleteMaintenance(ctx, maintenance.ID, &completedDate, &finalCost)
	if err != nil {
		t.Fatalf("CompleteMaintenance: %v", err)
	}
	if completed.Status != models.MaintenanceStatusCompleted {
		t.Errorf("status = %q, want Completed", completed.Status)
	}
	if completed.CompletedDate == nil || !completed.CompletedDate.Equal(completedDate) {
		t.Errorf("completedDate = %v, want %s", completed.CompletedDate, completedDate)
	}
	if !completed.Cost.Equal(finalCost) {
		t.Errorf("cost = %s, want %s", completed.Cost, finalCost)
	}

	// Completing twice is rejected; the ledger trigger runs once per order.
	if _, err := models.CompleteMaintenance(ctx, maintenance.ID, nil, nil); err == nil {
		t.Error("second completion must be rejected")
	}
}

func TestCompleteMaintenanceDefaultsDate(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	park := seedPark(t, ctx, "Parque Central")
	asset, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "Gate", ParkId: park.ID, PurchasePrice: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	maintenance, err := models.CreateMaintenance(ctx, &models.NewMaintenance{
		AssetId: asset.ID, Type: models.MaintenanceTypeCorrective,
		Cost: decimal.RequireFromString("10"),
	})
	if err != nil {
		t.Fatalf("CreateMaintenance: %v", err)
	}

	before := time.Now().Add(-time.Minute)
	completed, err := models.CompleteMaintenance(ctx, maintenance.ID, nil, nil)
	if err != nil {
		t.Fatalf("CompleteMaintenance: %v", err)
	}
	if completed.CompletedDate == nil || completed.CompletedDate.Before(before) {
		t.Errorf("completedDate = %v, want around now", completed.CompletedDate)
	}
}

func TestPaginateAssets(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	parkA := seedPark(t, ctx, "Parque A")
	parkB := seedPark(t, ctx, "Parque B")
	for i := 0; i < 4; i++ {
		if _, err := models.CreateAsset(ctx, &models.NewAsset{
			Name: "A", ParkId: parkA.ID, PurchasePrice: decimal.Zero,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := models.CreateAsset(ctx, &models.NewAsset{
		Name: "B", ParkId: parkB.ID, PurchasePrice: decimal.Zero,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	assets, total, err := models.PaginateAssets(ctx, 3, 1, nil)
	if err != nil {
		t.Fatalf("PaginateAssets: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(assets) != 3 {
		t.Errorf("page size = %d, want 3", len(assets))
	}

	filtered, total, err := models.PaginateAssets(ctx, 10, 1, &parkB.ID)
	if err != nil {
		t.Fatalf("PaginateAssets filtered: %v", err)
	}
	if total != 1 || len(filtered) != 1 {
		t.Errorf("filtered total/len = %d/%d, want 1/1", total, len(filtered))
	}
}
