package main

import (
	"github.com/rs/zerolog/log"

	"bookkeeping/internal/domain/record"
	"bookkeeping/internal/infrastructure/jsonfile"
	httphandlers "bookkeeping/internal/interfaces/http"
	"bookkeeping/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Store *jsonfile.Store

	// Handlers
	RecordHandler *httphandlers.RecordHandler
}

// NewDependencies initializes all application dependencies. The ledger
// is loaded once here and shared by every handler for the process
// lifetime.
func NewDependencies(cfg *config.Config) *Dependencies {
	store := jsonfile.Open(cfg.Storage.Path)
	log.Info().
		Str("path", cfg.Storage.Path).
		Int("records", store.Len()).
		Msg("Ledger loaded")

	repo := jsonfile.NewRecordRepository(store)
	service := record.NewService(repo)
	recordHandler := httphandlers.NewRecordHandler(service)

	return &Dependencies{
		Store:         store,
		RecordHandler: recordHandler,
	}
}
