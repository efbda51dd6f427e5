package cmd

import (
	"github.com/pixfold/pixfold/config"
	"github.com/pixfold/pixfold/models"
)

// openStore loads settings and connects to the database for a CLI command.
// The caller is responsible for closing the returned Store.
func openStore(configPath *string) (*models.Store, *config.Config, error) {
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := models.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	return store, cfg, nil
}
