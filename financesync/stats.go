package financesync

import (
	"context"

	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/shopspring/decimal"
)

type MonthlyStats struct {
	Month       int             `json:"month"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	RecordCount int             `json:"record_count"`
}

type FinanceStats struct {
	Year             int             `json:"year"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	RecordCount      int             `json:"record_count"`
	PurchaseCount    int             `json:"purchase_count"`
	MaintenanceCount int             `json:"maintenance_count"`
	MonthlyBreakdown []MonthlyStats  `json:"monthly_breakdown"`
}

// GetFinanceStats rolls up the engine-generated ledger entries of one year.
// Read-only; a year with no entries yields zeros, not an error. Amounts are
// summed as decimals in process so totals match the stored amounts exactly.
func GetFinanceStats(ctx context.Context, year int) (*FinanceStats, error) {
	expenses, err := models.FetchAssetExpensesByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	stats := FinanceStats{
		Year:        year,
		TotalAmount: decimal.Zero,
	}

	monthly := make(map[int]*MonthlyStats)
	for _, expense := range expenses {
		stats.TotalAmount = stats.TotalAmount.Add(expense.Amount)
		stats.RecordCount++
		if expense.SourceAssetId != nil {
			stats.PurchaseCount++
		}
		if expense.SourceMaintenanceId != nil {
			stats.MaintenanceCount++
		}

		m, ok := monthly[expense.Month]
		if !ok {
			m = &MonthlyStats{Month: expense.Month, TotalAmount: decimal.Zero}
			monthly[expense.Month] = m
		}
		m.TotalAmount = m.TotalAmount.Add(expense.Amount)
		m.RecordCount++
	}

	stats.MonthlyBreakdown = make([]MonthlyStats, 0, 12)
	for month := 1; month <= 12; month++ {
		if m, ok := monthly[month]; ok {
			stats.MonthlyBreakdown = append(stats.MonthlyBreakdown, *m)
		} else {
			stats.MonthlyBreakdown = append(stats.MonthlyBreakdown, MonthlyStats{
				Month:       month,
				TotalAmount: decimal.Zero,
			})
		}
	}

	return &stats, nil
}
