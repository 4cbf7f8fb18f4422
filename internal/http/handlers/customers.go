package handlers

import "net/http"

// ListCustomers serves the customer selection list.
func (a *App) ListCustomers(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"customers": a.Store.Customers(r.Context()),
	})
}

// CustomerSummaries serves the filtered customers table with per-customer
// invoice aggregates.
func (a *App) CustomerSummaries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	a.json(w, http.StatusOK, map[string]any{
		"customers": a.Store.FilteredCustomers(r.Context(), query),
	})
}
