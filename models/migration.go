package models

import (
	"log"

	"github.com/aspal-sistemas/parksys_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Park{},
		&Asset{}, &Maintenance{},
		&ExpenseCategory{}, &ActualExpense{},
		&FinanceSyncRun{}, &FinanceSyncError{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
