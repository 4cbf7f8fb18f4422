package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dashboard/internal/data"
	"dashboard/internal/http/handlers"
	"dashboard/internal/http/httpapi"
	"dashboard/internal/infra"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	// The tolerant resolver: without a URL the server still starts and every
	// query degrades to its safe default, so the page shell stays available.
	// Tools that genuinely need the database (cmd/seed) use the strict
	// LoadConfig instead.
	cfg := infra.LoadOptionalConfig()
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	var exec infra.SQLExecutor
	if pool != nil {
		defer pool.Close()
		exec = infra.NewSQLRunner(pool, logger)
	} else {
		logger.Warn().Msg("no database configured, serving safe defaults (set POSTGRES_URL or DATABASE_URL)")
	}
	store := data.NewStore(exec, logger)

	app := handlers.NewApp(store, logger)
	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
