package main

import (
	"context"
	"fmt"
	"os"

	"famfin/internal/config"
	"famfin/internal/database"
	"famfin/internal/logger"
	"famfin/internal/services"
	"famfin/internal/store"
)

func main() {
	logger.Init(os.Getenv("APP_ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	st := store.New()
	svc := services.NewFinanceService(st, database.NewLoader(dbManager), appConfig.OwnerID)

	ctx := context.Background()
	if err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}

	log.Infow("collections loaded",
		"transactions", len(svc.Transactions()),
		"members", len(svc.Members()),
		"accounts", len(svc.Accounts()),
		"categories", len(svc.Categories()),
		"goals", len(svc.Goals()),
	)

	log.Infow("dashboard summary",
		"total_income", svc.TotalIncome().StringFixed(2),
		"total_expenses", svc.TotalExpenses().StringFixed(2),
		"net_balance", svc.NetBalance().StringFixed(2),
	)

	for _, cs := range svc.ExpensesByCategory() {
		log.Infow("category", "name", cs.Category, "amount", cs.Amount.StringFixed(2), "percentage", cs.Percentage)
	}
	for _, tx := range svc.UpcomingExpenses() {
		log.Infow("upcoming", "description", tx.Description, "amount", tx.Amount.StringFixed(2), "due", tx.Date.Format("2006-01-02"))
	}

	return nil
}
