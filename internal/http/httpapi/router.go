package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"dashboard/internal/http/handlers"
	"dashboard/internal/infra"
	"dashboard/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)

		r.Get("/revenue", app.Revenue)
		r.Get("/dashboard/cards", app.DashboardCards)

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", app.ListInvoices)
			r.Get("/latest", app.LatestInvoices)
			r.Get("/pages", app.InvoicePages)
			r.Get("/{id}", app.GetInvoice)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", app.ListCustomers)
			r.Get("/summary", app.CustomerSummaries)
		})
	})

	return r
}
