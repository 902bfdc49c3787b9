package cmd

import (
	"context"
	"fmt"

	"bucket-manager/core/config"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"

	"go.uber.org/zap"
)

// runtime bundles what every storage command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client *storage.Client
}

// bootstrap loads configuration, builds the logger and connects the storage client.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(ctx, cfg.Storage, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &runtime{cfg: cfg, logger: logg, client: client}, nil
}
