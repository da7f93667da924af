package financesync

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/aspal-sistemas/parksys_backend/utils"
	"gorm.io/gorm"
)

// reconcileBatchSize bounds each page of source rows so large registries do
// not pull the whole table into memory.
const reconcileBatchSize = 200

const syncLockKey = "finance-sync"

// categoryCache memoizes provisioned category ids for the duration of one
// reconciliation pass. A provisioning failure is not cached; the next item
// retries.
type categoryCache struct {
	ids map[CategoryKind]int
}

func (c *categoryCache) id(ctx context.Context, kind CategoryKind) (int, error) {
	if c.ids == nil {
		c.ids = make(map[CategoryKind]int)
	}
	if id, ok := c.ids[kind]; ok {
		return id, nil
	}
	category, err := GetOrCreateCategory(ctx, kind)
	if err != nil {
		return 0, err
	}
	c.ids[kind] = category.ID
	return category.ID, nil
}

// ReconcileAssetPurchases backfills ledger entries for every asset with a
// postable purchase price and no linked entry. Per-item failures are
// recorded and the scan continues; the returned error is only for failures
// of the scan itself (page query), in which case partial progress already
// written remains valid and a re-run resumes by skipping posted records.
func ReconcileAssetPurchases(ctx context.Context) (SyncReport, error) {
	report := SyncReport{Errors: []SyncItemError{}}
	cache := &categoryCache{}
	db := config.GetDB().WithContext(ctx)

	lastID := 0
	for {
		var assets []*models.Asset
		err := db.Where("purchase_price > 0 AND id > ?", lastID).
			Order("id ASC").Limit(reconcileBatchSize).
			Find(&assets).Error
		if err != nil {
			return report, err
		}
		if len(assets) == 0 {
			return report, nil
		}

		for _, asset := range assets {
			lastID = asset.ID
			report.Processed++

			linked, err := hasLinkedEntry(db, "source_asset_id", asset.ID)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeAsset, SourceId: asset.ID,
					Code: errCodeWriteFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}
			if linked {
				continue
			}

			park, err := models.GetPark(ctx, asset.ParkId)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeAsset, SourceId: asset.ID,
					Code: errCodeParkMissing, Message: err.Error(),
					Retryable: !errors.Is(err, utils.ErrorRecordNotFound),
				})
				continue
			}

			categoryId, err := cache.id(ctx, CategoryPurchase)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeAsset, SourceId: asset.ID,
					Code: errCodeCategoryFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}

			draft := TranslateAssetPurchase(asset, park, categoryId)
			if draft == nil {
				continue
			}

			_, created, err := WriteDraft(ctx, draft)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeAsset, SourceId: asset.ID,
					Code: errCodeWriteFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}
			if created {
				report.Synced++
			}
		}
	}
}

// ReconcileMaintenances backfills ledger entries for completed maintenance
// work orders with a postable cost. Same contract as ReconcileAssetPurchases.
func ReconcileMaintenances(ctx context.Context) (SyncReport, error) {
	report := SyncReport{Errors: []SyncItemError{}}
	cache := &categoryCache{}
	db := config.GetDB().WithContext(ctx)

	lastID := 0
	for {
		var maintenances []*models.Maintenance
		err := db.Where("status = ? AND cost > 0 AND id > ?", models.MaintenanceStatusCompleted, lastID).
			Order("id ASC").Limit(reconcileBatchSize).
			Find(&maintenances).Error
		if err != nil {
			return report, err
		}
		if len(maintenances) == 0 {
			return report, nil
		}

		for _, maintenance := range maintenances {
			lastID = maintenance.ID
			report.Processed++

			linked, err := hasLinkedEntry(db, "source_maintenance_id", maintenance.ID)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeMaintenance, SourceId: maintenance.ID,
					Code: errCodeWriteFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}
			if linked {
				continue
			}

			asset, err := models.GetAsset(ctx, maintenance.AssetId)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeMaintenance, SourceId: maintenance.ID,
					Code: errCodeAssetMissing, Message: err.Error(),
					Retryable: !errors.Is(err, utils.ErrorRecordNotFound),
				})
				continue
			}

			categoryId, err := cache.id(ctx, CategoryMaintenance)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeMaintenance, SourceId: maintenance.ID,
					Code: errCodeCategoryFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}

			draft := TranslateMaintenance(maintenance, asset, categoryId)
			if draft == nil {
				continue
			}

			_, created, err := WriteDraft(ctx, draft)
			if err != nil {
				report.Errors = append(report.Errors, SyncItemError{
					EntityType: entityTypeMaintenance, SourceId: maintenance.ID,
					Code: errCodeWriteFailed, Message: err.Error(), Retryable: true,
				})
				continue
			}
			if created {
				report.Synced++
			}
		}
	}
}

func hasLinkedEntry(db *gorm.DB, column string, sourceId int) (bool, error) {
	var count int64
	err := db.Model(&models.ActualExpense{}).
		Where("is_asset_generated = ? AND "+column+" = ?", true, sourceId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RunFinanceSync executes both reconcilers under a persisted run record.
// The redis lock only avoids wasted duplicate work from overlapping manual
// runs; even without it, concurrent runs are safe because the ledger's
// unique source indexes make every insert idempotent.
func RunFinanceSync(ctx context.Context, triggeredBy string) (*models.FinanceSyncRun, SyncReport, error) {
	release, err := utils.SyncLock(ctx, syncLockKey, "financesync", "RunFinanceSync")
	if err != nil {
		return nil, SyncReport{}, err
	}
	defer release()

	db := config.GetDB().WithContext(ctx)
	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)

	now := time.Now()
	run := models.FinanceSyncRun{
		Status:        models.SyncRunStatusRunning,
		TriggeredBy:   triggeredBy,
		CorrelationId: correlationId,
		StartedAt:     &now,
	}
	if err := db.Create(&run).Error; err != nil {
		return nil, SyncReport{}, err
	}

	combined := SyncReport{Errors: []SyncItemError{}}
	stats := map[string]int{"assets": 0, "maintenances": 0}
	scanFailed := false

	assetReport, err := ReconcileAssetPurchases(ctx)
	combined.merge(assetReport)
	stats["assets"] = assetReport.Synced
	if err != nil {
		scanFailed = true
		combined.Errors = append(combined.Errors, SyncItemError{
			EntityType: entityTypeAsset, Code: errCodeWriteFailed,
			Message: err.Error(), Retryable: true,
		})
	}

	maintenanceReport, err := ReconcileMaintenances(ctx)
	combined.merge(maintenanceReport)
	stats["maintenances"] = maintenanceReport.Synced
	if err != nil {
		scanFailed = true
		combined.Errors = append(combined.Errors, SyncItemError{
			EntityType: entityTypeMaintenance, Code: errCodeWriteFailed,
			Message: err.Error(), Retryable: true,
		})
	}

	for _, itemErr := range combined.Errors {
		record := models.FinanceSyncError{
			SyncRunId:  run.ID,
			EntityType: itemErr.EntityType,
			SourceId:   itemErr.SourceId,
			ErrorCode:  itemErr.Code,
			Message:    itemErr.Message,
			Retryable:  itemErr.Retryable,
		}
		if err := db.Create(&record).Error; err != nil {
			config.LogError(config.GetLogger(), "financesync", "RunFinanceSync", "persist sync error", itemErr, err)
		}
	}

	status := models.SyncRunStatusSuccess
	if scanFailed && combined.Synced == 0 {
		status = models.SyncRunStatusFailed
	} else if len(combined.Errors) > 0 {
		status = models.SyncRunStatusPartial
	}

	finishedAt := time.Now()
	statsJSON, _ := json.Marshal(stats)
	updates := map[string]interface{}{
		"Status":     status,
		"Processed":  combined.Processed,
		"Synced":     combined.Synced,
		"ErrorCount": len(combined.Errors),
		"StatsJSON":  statsJSON,
		"FinishedAt": finishedAt,
		"DurationMs": finishedAt.Sub(now).Milliseconds(),
	}
	if err := db.Model(&run).Updates(updates).Error; err != nil {
		return nil, combined, err
	}

	run.Status = status
	run.Processed = combined.Processed
	run.Synced = combined.Synced
	run.ErrorCount = len(combined.Errors)
	run.StatsJSON = statsJSON
	run.FinishedAt = &finishedAt
	run.DurationMs = finishedAt.Sub(now).Milliseconds()

	return &run, combined, nil
}
