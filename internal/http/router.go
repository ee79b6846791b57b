package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	currencyHandler "github.com/inwords/expenses/internal/http/currency"
	eventHandler "github.com/inwords/expenses/internal/http/event"
	expenseHandler "github.com/inwords/expenses/internal/http/expense"
)

func New(
	eventsV1 *eventHandler.Handler,
	expensesV1 *expenseHandler.Handler,
	currenciesV1 *currencyHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Pin-Code"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			eventsV1.Routes(r)
			expensesV1.Routes(r)
		})

		r.Route("/currencies", func(r chi.Router) {
			currenciesV1.Routes(r)
		})
	})

	return router
}
