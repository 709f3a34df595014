package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/payday/internal/http/account"
	"github.com/MrJamesThe3rd/payday/internal/http/category"
	"github.com/MrJamesThe3rd/payday/internal/http/expense"
	"github.com/MrJamesThe3rd/payday/internal/http/overview"
	"github.com/MrJamesThe3rd/payday/internal/http/pending"
	"github.com/MrJamesThe3rd/payday/internal/http/recurring"
	"github.com/MrJamesThe3rd/payday/internal/http/snapshot"
)

func New(
	overviewV1 *overview.Handler,
	expensesV1 *expense.Handler,
	recurringV1 *recurring.Handler,
	accountsV1 *account.Handler,
	categoriesV1 *category.Handler,
	pendingV1 *pending.Handler,
	snapshotV1 *snapshot.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/overview", func(r chi.Router) {
			overviewV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recurringV1.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/pending", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			pendingV1.Routes(r)
		})

		r.Route("/snapshot", snapshotV1.Routes)
	})

	return router
}
