package router

import (
	"net/http"

	_ "go-bank-console/docs"
	"go-bank-console/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups everything the console router serves.
type Handlers struct {
	Dashboard     *handler.DashboardHandler
	AccountDetail *handler.AccountDetailHandler
	Sessions      *handler.SessionManager
	Metrics       http.Handler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger)

	r.Get("/health", handler.HealthCheck)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if h.Sessions == nil {
		return r
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Sessions.Middleware)

		if d := h.Dashboard; d != nil {
			r.Get("/backend/health", handler.ErrorHandlingMiddleware(d.BackendHealth))
			r.Delete("/session", handler.ErrorHandlingMiddleware(d.CloseSession(h.Sessions)))

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", handler.ErrorHandlingMiddleware(d.GetDashboard))
				r.Post("/accounts", handler.ErrorHandlingMiddleware(d.CreateAccount))
				r.Post("/search", handler.ErrorHandlingMiddleware(d.SearchAccount))
				r.Patch("/account", handler.ErrorHandlingMiddleware(d.UpdateAccount))
				r.Delete("/account", handler.ErrorHandlingMiddleware(d.DeleteAccount))
				r.Post("/deposit", handler.ErrorHandlingMiddleware(d.Deposit))
				r.Post("/withdraw", handler.ErrorHandlingMiddleware(d.Withdraw))
				r.Post("/cards", handler.ErrorHandlingMiddleware(d.CreateCard))
				r.Delete("/cards", handler.ErrorHandlingMiddleware(d.DeleteCard))
				r.Post("/block", handler.ErrorHandlingMiddleware(d.BlockAccount))
				r.Post("/unblock", handler.ErrorHandlingMiddleware(d.UnblockAccount))
			})
		}

		if a := h.AccountDetail; a != nil {
			r.Post("/search", handler.ErrorHandlingMiddleware(a.Search))
			r.Get("/accounts/{iban}", handler.ErrorHandlingMiddleware(a.GetAccount))
			r.Post("/accounts/{iban}/transactions", handler.ErrorHandlingMiddleware(a.SubmitTransaction))
		}
	})

	return r
}
