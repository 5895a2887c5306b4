package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		path := writeTempConfig(t, "project: test-project\nversion: 1\nscopes:\n  characters: [Characters]\n  locations: [Locations]\nage:\n  from_date: true\n  unit: years\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "test-project" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Root != "." {
			t.Fatalf("expected default root, got %q", cfg.Root)
		}
		if !cfg.Age.FromDate || cfg.Age.Unit != "years" {
			t.Fatalf("unexpected age config: %+v", cfg.Age)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nscopes:\n  characters: [Characters]\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 2\nscopes:\n  characters: [Characters]\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no scope folders", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad age unit", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nscopes:\n  characters: [Characters]\nage:\n  unit: fortnights\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("default age unit", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nscopes:\n  characters: [Characters]\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Age.Unit != "years" {
			t.Fatalf("expected default unit years, got %q", cfg.Age.Unit)
		}
	})

	t.Run("unknown store driver", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nscopes:\n  characters: [Characters]\nstore:\n  driver: oracle\n  dsn: x\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("store driver requires dsn", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\nscopes:\n  characters: [Characters]\nstore:\n  driver: sqlite\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "project: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
