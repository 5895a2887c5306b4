// Package config loads and validates the novalist.yaml project file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Drommedhar/novalist-sub000/internal/resolve"
)

type ProjectConfig struct {
	Project string      `yaml:"project"`
	Version int         `yaml:"version"`
	Root    string      `yaml:"root"`
	Scopes  ScopeConfig `yaml:"scopes"`
	Exclude []string    `yaml:"exclude"`
	Age     AgeConfig   `yaml:"age"`
	Store   StoreConfig `yaml:"store"`
}

// ScopeConfig lists the folders (relative to the root) holding each entity
// category.
type ScopeConfig struct {
	Characters []string `yaml:"characters"`
	Locations  []string `yaml:"locations"`
	Items      []string `yaml:"items"`
	Lore       []string `yaml:"lore"`
}

type AgeConfig struct {
	FromDate bool   `yaml:"from_date"`
	Unit     string `yaml:"unit"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	folders := 0
	for _, scope := range [][]string{
		cfg.Scopes.Characters, cfg.Scopes.Locations, cfg.Scopes.Items, cfg.Scopes.Lore,
	} {
		folders += len(scope)
	}
	if folders == 0 {
		return fmt.Errorf("at least one scope folder is required")
	}

	unit, ok := resolve.ParseUnit(cfg.Age.Unit)
	if !ok {
		return fmt.Errorf("unsupported age unit: %s", cfg.Age.Unit)
	}
	cfg.Age.Unit = string(unit)

	switch cfg.Store.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if cfg.Store.Driver != "" && strings.TrimSpace(cfg.Store.DSN) == "" {
		return fmt.Errorf("store dsn is required for driver %s", cfg.Store.Driver)
	}

	return nil
}
