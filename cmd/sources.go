package cmd

import (
	"fmt"

	"hub-sync/core/config"
	"hub-sync/core/database"
	"hub-sync/core/storage"
	"hub-sync/core/tables"
)

// newLister builds the table source selected by cfg.Source.Driver.
func newLister(cfg *config.Config) (tables.Lister, error) {
	switch cfg.Source.Driver {
	case tables.DriverAirtable:
		return tables.NewAirtableLister(cfg.Airtable), nil

	case tables.DriverDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return tables.NewDatabaseLister(db, cfg.Source.RecordsTable), nil

	case tables.DriverStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return tables.NewStorageLister(client, cfg.Storage.Bucket, cfg.Source.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Source.Driver)
	}
}

// loadConfig loads and validates configuration. Missing secrets fail here,
// before any network call.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
