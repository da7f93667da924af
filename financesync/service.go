package financesync

import (
	"context"

	"github.com/aspal-sistemas/parksys_backend/models"
)

// SyncAssetPurchase is the live trigger for a newly recorded asset purchase.
// Returns nil when the asset has nothing to post (non-positive price).
// Callers in the HTTP layer must not fail the asset write when this errors;
// the next reconciliation pass picks the record up.
func SyncAssetPurchase(ctx context.Context, asset *models.Asset) (*models.ActualExpense, error) {
	if !asset.PurchasePrice.IsPositive() {
		return nil, nil
	}

	park, err := models.GetPark(ctx, asset.ParkId)
	if err != nil {
		return nil, err
	}

	category, err := GetOrCreateCategory(ctx, CategoryPurchase)
	if err != nil {
		return nil, err
	}

	draft := TranslateAssetPurchase(asset, park, category.ID)
	if draft == nil {
		return nil, nil
	}

	entry, _, err := WriteDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// SyncMaintenance is the live trigger for a maintenance work order that just
// transitioned to Completed. Same contract as SyncAssetPurchase.
func SyncMaintenance(ctx context.Context, maintenance *models.Maintenance) (*models.ActualExpense, error) {
	if maintenance.Status != models.MaintenanceStatusCompleted || !maintenance.Cost.IsPositive() {
		return nil, nil
	}

	asset, err := models.GetAsset(ctx, maintenance.AssetId)
	if err != nil {
		return nil, err
	}

	category, err := GetOrCreateCategory(ctx, CategoryMaintenance)
	if err != nil {
		return nil, err
	}

	draft := TranslateMaintenance(maintenance, asset, category.ID)
	if draft == nil {
		return nil, nil
	}

	entry, _, err := WriteDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
