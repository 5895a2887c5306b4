package main

import (
	"github.com/Drommedhar/novalist-sub000/internal/config"
	"github.com/Drommedhar/novalist-sub000/internal/index"
	"github.com/Drommedhar/novalist-sub000/internal/vault"
)

const configPath = "novalist.yaml"

// openProject loads the project config, wires the vault, and builds a
// fresh index over the scope folders.
func openProject() (*config.ProjectConfig, *vault.Vault, *index.Service, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	v := vault.New(cfg.Root, cfg.Exclude)
	scopes := v.Scopes(cfg.Scopes.Characters, cfg.Scopes.Locations, cfg.Scopes.Items, cfg.Scopes.Lore)

	indexes := index.NewService(v, scopes)
	if err := indexes.Rebuild(); err != nil {
		return nil, nil, nil, err
	}
	return cfg, v, indexes, nil
}
