package financesync

import (
	"context"
	"fmt"

	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/xuri/excelize/v2"
)

// BuildExpenseWorkbook renders one year of engine-generated ledger entries
// into an XLSX workbook for the admin dashboard download.
func BuildExpenseWorkbook(ctx context.Context, year int) (*excelize.File, error) {
	expenses, err := models.FetchAssetExpensesByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Reference")
	f.SetCellValue(sheet, "B1", "Concept")
	f.SetCellValue(sheet, "C1", "Amount")
	f.SetCellValue(sheet, "D1", "Date")
	f.SetCellValue(sheet, "E1", "Month")
	f.SetCellValue(sheet, "F1", "Year")
	f.SetCellValue(sheet, "G1", "Paid")

	for i, expense := range expenses {
		row := fmt.Sprint(i + 2)
		f.SetCellValue(sheet, "A"+row, expense.ReferenceNumber)
		f.SetCellValue(sheet, "B"+row, expense.Concept)
		f.SetCellValue(sheet, "C"+row, expense.Amount.String())
		f.SetCellValue(sheet, "D"+row, expense.ExpenseDate.Format("2006-01-02"))
		f.SetCellValue(sheet, "E"+row, expense.Month)
		f.SetCellValue(sheet, "F"+row, expense.Year)
		f.SetCellValue(sheet, "G"+row, expense.IsPaid != nil && *expense.IsPaid)
	}

	return f, nil
}
