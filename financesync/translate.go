package financesync

import (
	"fmt"
	"time"

	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/shopspring/decimal"
)

// ExpenseDraft is a normalized, not-yet-written ledger entry. Exactly one of
// SourceAssetId / SourceMaintenanceId is set.
type ExpenseDraft struct {
	Amount              decimal.Decimal
	Concept             string
	Description         string
	CategoryId          int
	Date                time.Time
	ReferenceNumber     string
	SourceAssetId       *int
	SourceMaintenanceId *int
	IsPaid              bool
}

// TranslateAssetPurchase maps an asset purchase into a ledger draft.
// A non-positive purchase price is a valid state, not an error: the asset
// simply has nothing to post and the translator returns nil.
func TranslateAssetPurchase(asset *models.Asset, park *models.Park, categoryId int) *ExpenseDraft {
	if !asset.PurchasePrice.IsPositive() {
		return nil
	}

	date := time.Now()
	if asset.PurchaseDate != nil {
		date = *asset.PurchaseDate
	}

	isPaid := asset.IsPaid != nil && *asset.IsPaid
	assetId := asset.ID

	return &ExpenseDraft{
		Amount:          asset.PurchasePrice,
		Concept:         fmt.Sprintf("Purchase of asset: %s", asset.Name),
		Description:     fmt.Sprintf("Acquisition of %s for park %s. Invoice: %s", asset.Name, park.Name, asset.InvoiceNumber),
		CategoryId:      categoryId,
		Date:            date,
		ReferenceNumber: fmt.Sprintf("ASSET-%d", assetId),
		SourceAssetId:   &assetId,
		IsPaid:          isPaid,
	}
}

// TranslateMaintenance maps a completed maintenance into a ledger draft.
// Nil when the cost is non-positive or the work order is not completed.
func TranslateMaintenance(maintenance *models.Maintenance, asset *models.Asset, categoryId int) *ExpenseDraft {
	if !maintenance.Cost.IsPositive() {
		return nil
	}
	if maintenance.Status != models.MaintenanceStatusCompleted {
		return nil
	}

	date := time.Now()
	if maintenance.CompletedDate != nil {
		date = *maintenance.CompletedDate
	}

	maintenanceId := maintenance.ID

	return &ExpenseDraft{
		Amount:              maintenance.Cost,
		Concept:             fmt.Sprintf("%s maintenance: %s", maintenance.Type.Label(), asset.Name),
		Description:         fmt.Sprintf("%s maintenance completed on asset %s. %s", maintenance.Type.Label(), asset.Name, maintenance.Description),
		CategoryId:          categoryId,
		Date:                date,
		ReferenceNumber:     fmt.Sprintf("MAINT-%d", maintenanceId),
		SourceMaintenanceId: &maintenanceId,
		IsPaid:              true,
	}
}
