package handlers

import (
	"encoding/json"
	"net/http"

	"dashboard/internal/data"
	"dashboard/internal/infra"
)

// App is the handler container wired at startup: the query store plus the
// process logger, passed by reference to every request handler.
type App struct {
	Store  *data.Store
	Logger infra.Logger
}

func NewApp(store *data.Store, logger infra.Logger) *App {
	return &App{Store: store, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
