package financesync

import (
	"context"
	"errors"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"gorm.io/gorm"
)

// WriteDraft posts a draft to the ledger exactly once per source record.
// Returns the entry and whether it was newly created; an entry that already
// exists for the same source id is returned as a successful no-op.
//
// The pre-insert existence check only saves a round-trip. Correctness under
// concurrent writers comes from the unique indexes on source_asset_id and
// source_maintenance_id: a loser of the race gets gorm.ErrDuplicatedKey and
// re-reads the winner's row.
func WriteDraft(ctx context.Context, draft *ExpenseDraft) (*models.ActualExpense, bool, error) {
	if draft == nil {
		return nil, false, errors.New("nil expense draft")
	}
	if draft.SourceAssetId == nil && draft.SourceMaintenanceId == nil {
		return nil, false, errors.New("expense draft has no source id")
	}

	db := config.GetDB().WithContext(ctx)

	existing, err := findBySource(db, draft)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	isPaid := draft.IsPaid
	entry := models.ActualExpense{
		Amount:              draft.Amount,
		Concept:             draft.Concept,
		Description:         draft.Description,
		CategoryId:          draft.CategoryId,
		ExpenseDate:         draft.Date,
		Month:               int(draft.Date.Month()),
		Year:                draft.Date.Year(),
		ReferenceNumber:     draft.ReferenceNumber,
		SourceAssetId:       draft.SourceAssetId,
		SourceMaintenanceId: draft.SourceMaintenanceId,
		IsAssetGenerated:    true,
		IsPaid:              &isPaid,
	}

	err = db.Create(&entry).Error
	if err == nil {
		return &entry, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, err
	}

	existing, err = findBySource(db, draft)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// Duplicate-key insert but no row to read back; surface the conflict.
		return nil, false, gorm.ErrDuplicatedKey
	}
	return existing, false, nil
}

func findBySource(db *gorm.DB, draft *ExpenseDraft) (*models.ActualExpense, error) {
	var existing models.ActualExpense
	query := db.Where("is_asset_generated = ?", true)
	if draft.SourceAssetId != nil {
		query = query.Where("source_asset_id = ?", *draft.SourceAssetId)
	} else {
		query = query.Where("source_maintenance_id = ?", *draft.SourceMaintenanceId)
	}
	err := query.Take(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}
