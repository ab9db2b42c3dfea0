package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	httphandlers "bookkeeping/internal/interfaces/http"
	"bookkeeping/internal/shared/config"
	"bookkeeping/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Metrics
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Ledger API
	mux.HandleFunc("/api/records", deps.RecordHandler.HandleRecords)
	mux.HandleFunc("/api/records/", deps.RecordHandler.HandleRecordByID)
	mux.HandleFunc("/api/users/", deps.RecordHandler.HandleUserSummary)

	// Apply global middleware
	handler := http.Handler(mux)
	if cfg.Metrics.Enabled {
		handler = middleware.Metrics(handler)
	}
	handler = middleware.Logging(middleware.CORS(cfg.Server.AllowedHosts)(handler))

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Info().Msg("TLS security middleware enabled (HSTS)")
	}

	return handler
}
