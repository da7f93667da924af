package financesync

// SyncItemError records one source record a batch could not post. One bad
// record never aborts the batch; the error is returned as data so operators
// can see exactly which records still need attention.
type SyncItemError struct {
	EntityType string `json:"entity_type"`
	SourceId   int    `json:"source_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Retryable  bool   `json:"retryable"`
}

// SyncReport is the result of one reconciliation pass.
// Processed counts every candidate row looked at, Synced only the entries
// newly posted; already-linked rows are processed but not synced.
type SyncReport struct {
	Processed int             `json:"processed"`
	Synced    int             `json:"synced"`
	Errors    []SyncItemError `json:"errors"`
}

func (r *SyncReport) merge(other SyncReport) {
	r.Processed += other.Processed
	r.Synced += other.Synced
	r.Errors = append(r.Errors, other.Errors...)
}

const (
	errCodeParkMissing    = "park_missing"
	errCodeAssetMissing   = "asset_missing"
	errCodeCategoryFailed = "category_provision_failed"
	errCodeWriteFailed    = "write_failed"
)

const (
	entityTypeAsset       = "asset"
	entityTypeMaintenance = "maintenance"
)
