package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/inwords/expenses/internal/config"
	"github.com/inwords/expenses/internal/currency"
	currencyStore "github.com/inwords/expenses/internal/currency/store"
	"github.com/inwords/expenses/internal/database"
	"github.com/inwords/expenses/internal/event"
	eventStore "github.com/inwords/expenses/internal/event/store"
	"github.com/inwords/expenses/internal/expense"
	expenseStore "github.com/inwords/expenses/internal/expense/store"
	expensesHttp "github.com/inwords/expenses/internal/http"
	currencyHandler "github.com/inwords/expenses/internal/http/currency"
	eventHandler "github.com/inwords/expenses/internal/http/event"
	expenseHandler "github.com/inwords/expenses/internal/http/expense"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		eventService    = event.NewService(eventStore.New(db), cfg.Share.TokenSecret, cfg.Share.TokenTTL)
		currencyService = currency.NewService(currencyStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db), eventService)
	)

	var (
		eventH    = eventHandler.NewHandler(eventService)
		expenseH  = expenseHandler.NewHandler(expenseService)
		currencyH = currencyHandler.NewHandler(currencyService)
	)

	router := expensesHttp.New(eventH, expenseH, currencyH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
