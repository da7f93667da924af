package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/financesync"
	"github.com/aspal-sistemas/parksys_backend/models"
)

// One-shot reconciliation of the asset registry against the ledger. Safe to
// re-run at any time: already-posted records are skipped.
func main() {
	assetsOnly := flag.Bool("assets-only", false, "Reconcile asset purchases only")
	maintenancesOnly := flag.Bool("maintenances-only", false, "Reconcile completed maintenances only")
	flag.Parse()

	if *assetsOnly && *maintenancesOnly {
		fmt.Fprintln(os.Stderr, "-assets-only and -maintenances-only are mutually exclusive")
		os.Exit(1)
	}

	ctx := context.Background()
	// Explicit DB connect (config does not connect in init()).
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	// Ensure schema is up-to-date (creates sync run tables if missing).
	models.MigrateTable()

	switch {
	case *assetsOnly:
		report, err := financesync.ReconcileAssetPurchases(ctx)
		printReport("assets", report, err)
	case *maintenancesOnly:
		report, err := financesync.ReconcileMaintenances(ctx)
		printReport("maintenances", report, err)
	default:
		run, report, err := financesync.RunFinanceSync(ctx, models.SyncTriggeredSystem)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sync run failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("run %d finished with status %s\n", run.ID, run.Status)
		printReport("combined", report, nil)
	}
}

func printReport(label string, report financesync.SyncReport, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s scan aborted: %v (progress already posted remains valid)\n", label, err)
	}
	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Printf("%s: %s\n", label, string(out))
	if err != nil {
		os.Exit(1)
	}
}
