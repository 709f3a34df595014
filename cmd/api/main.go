package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/payday/internal/account"
	accountStore "github.com/MrJamesThe3rd/payday/internal/account/store"
	"github.com/MrJamesThe3rd/payday/internal/audit"
	auditStore "github.com/MrJamesThe3rd/payday/internal/audit/store"
	"github.com/MrJamesThe3rd/payday/internal/category"
	categoryStore "github.com/MrJamesThe3rd/payday/internal/category/store"
	"github.com/MrJamesThe3rd/payday/internal/config"
	"github.com/MrJamesThe3rd/payday/internal/cycle"
	"github.com/MrJamesThe3rd/payday/internal/database"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/payday/internal/expense/store"
	paydayHttp "github.com/MrJamesThe3rd/payday/internal/http"
	accountHandler "github.com/MrJamesThe3rd/payday/internal/http/account"
	categoryHandler "github.com/MrJamesThe3rd/payday/internal/http/category"
	expenseHandler "github.com/MrJamesThe3rd/payday/internal/http/expense"
	overviewHandler "github.com/MrJamesThe3rd/payday/internal/http/overview"
	pendingHandler "github.com/MrJamesThe3rd/payday/internal/http/pending"
	recurringHandler "github.com/MrJamesThe3rd/payday/internal/http/recurring"
	snapshotHandler "github.com/MrJamesThe3rd/payday/internal/http/snapshot"
	"github.com/MrJamesThe3rd/payday/internal/overview"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
	paycheckStore "github.com/MrJamesThe3rd/payday/internal/paycheck/store"
	"github.com/MrJamesThe3rd/payday/internal/pending"
	pendingStore "github.com/MrJamesThe3rd/payday/internal/pending/store"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
	recurringStore "github.com/MrJamesThe3rd/payday/internal/recurring/store"
	"github.com/MrJamesThe3rd/payday/internal/snapshot"
	snapshotStore "github.com/MrJamesThe3rd/payday/internal/snapshot/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	expenseSt := expenseStore.New(db)
	accountSt := accountStore.New(db)

	var (
		categoryService  = category.NewService(categoryStore.New(db))
		expenseService   = expense.NewService(expenseSt, categoryService)
		paycheckService  = paycheck.NewService(paycheckStore.New(db))
		recurringService = recurring.NewService(recurringStore.New(db), expenseSt)
		auditService     = audit.NewService(auditStore.New(db))
		cycleService     = cycle.NewService(expenseSt, auditService)
		pendingService   = pending.NewService(pendingStore.New(db), accountSt)
		accountService   = account.NewService(accountSt, pendingService)
		snapshotService  = snapshot.NewService(snapshotStore.New(db), time.Now)
	)

	overviewService := overview.NewService(
		paycheckService,
		expenseService,
		recurringService,
		cycleService,
		auditService,
		dates.SystemClock(),
		slog.Default(),
	)

	if err := categoryService.InitializeDefaults(ctx); err != nil {
		slog.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	if err := accountService.EnsureDefault(ctx); err != nil {
		slog.Error("failed to backfill default account", "error", err)
		os.Exit(1)
	}

	var (
		overviewH  = overviewHandler.NewHandler(overviewService, paycheckService, auditService)
		expenseH   = expenseHandler.NewHandler(expenseService, overviewService)
		recurringH = recurringHandler.NewHandler(recurringService)
		accountH   = accountHandler.NewHandler(accountService)
		categoryH  = categoryHandler.NewHandler(categoryService)
		pendingH   = pendingHandler.NewHandler(pendingService)
		snapshotH  = snapshotHandler.NewHandler(snapshotService)
	)

	router := paydayHttp.New(overviewH, expenseH, recurringH, accountH, categoryH, pendingH, snapshotH, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
