package handlers

import "net/http"

// Revenue serves the precomputed monthly revenue rows behind the chart.
func (a *App) Revenue(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"revenue": a.Store.Revenue(r.Context()),
	})
}

// DashboardCards serves the overview card counts and sums.
func (a *App) DashboardCards(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Store.CardData(r.Context()))
}
