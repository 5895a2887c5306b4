package main

import (
	"context"
	"fmt"

	"github.com/Drommedhar/novalist-sub000/internal/config"
	"github.com/Drommedhar/novalist-sub000/internal/store"
	"github.com/Drommedhar/novalist-sub000/internal/store/postgres"
	"github.com/Drommedhar/novalist-sub000/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		client, err := sqlite.New(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "postgres":
		client, err := postgres.New(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "":
		return nil, fmt.Errorf("no store configured; set store.driver in %s", configPath)
	}
	return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
}
