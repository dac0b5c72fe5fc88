package main

import (
	"github.com/ogrande/tower-cards/internal/config"
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/logging"
	"github.com/ogrande/tower-cards/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Invalid tower configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

// openStoreOrExit builds the configured snapshot backend and loads the
// store. Missing or corrupt state never stops startup; only an unusable
// backend (bad path, unwritable database) does.
func openStoreOrExit(cfg *config.LoadedConfig) *storage.Store {
	var backend storage.Backend
	var err error
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		backend, err = storage.NewSQLiteBackend(cfg.StorePath)
	default:
		backend, err = storage.NewFileBackend(cfg.StorePath)
	}
	if err != nil {
		logging.Fatal("Failed to open store backend", err, logging.Fields{
			constants.LogFieldBackend: cfg.StoreBackend,
			"path":                    cfg.StorePath,
		})
	}
	return storage.Open(backend)
}
