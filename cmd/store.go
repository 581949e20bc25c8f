package cmd

import (
	"fmt"

	"object-gateway/core/config"
	"object-gateway/core/logger"
	"object-gateway/core/objectstore"
	"object-gateway/core/storage"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds the logger shared by every
// command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openStore opens the object store with the configured vendor client.
func openStore(cfg *config.Config, logg *zap.Logger, opts ...objectstore.Option) (*objectstore.Store, error) {
	store, err := objectstore.New(cfg.Storage, storage.NewClient, logg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create object store: %w", err)
	}
	return store, nil
}
