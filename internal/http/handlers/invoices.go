package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// LatestInvoices serves the dashboard's most-recent-invoices panel.
func (a *App) LatestInvoices(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"invoices": a.Store.LatestInvoices(r.Context()),
	})
}

// ListInvoices serves one page of the filtered invoice table. Degrades to an
// empty page when the database is unreachable.
func (a *App) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	a.json(w, http.StatusOK, map[string]any{
		"invoices": a.Store.FilteredInvoices(r.Context(), query, page),
		"page":     page,
	})
}

// InvoicePages serves the page count for the filtered invoice table.
func (a *App) InvoicePages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	a.json(w, http.StatusOK, map[string]any{
		"total_pages": a.Store.InvoicePages(r.Context(), query),
	})
}

// GetInvoice serves a single invoice in its edit-form shape.
func (a *App) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := a.Store.InvoiceByID(r.Context(), id)
	if form == nil {
		a.error(w, http.StatusNotFound, "not_found", "invoice not found")
		return
	}
	a.json(w, http.StatusOK, form)
}
