package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS entries (
		name_normalized TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		path            TEXT NOT NULL,
		category        TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS presence (
		chapter  TEXT NOT NULL,
		category TEXT NOT NULL,
		name     TEXT NOT NULL,
		CONSTRAINT uq_presence UNIQUE (chapter, name)
	);

	CREATE TABLE IF NOT EXISTS property_values (
		key   TEXT NOT NULL,
		value TEXT NOT NULL,
		CONSTRAINT uq_property_value UNIQUE (key, value)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_category ON entries (category);
	CREATE INDEX IF NOT EXISTS idx_presence_chapter ON presence (chapter);
	CREATE INDEX IF NOT EXISTS idx_presence_name ON presence (name);
	CREATE INDEX IF NOT EXISTS idx_property_values_key ON property_values (key);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}
