package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Drommedhar/novalist-sub000/internal/store"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{pool: pool}, nil
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}

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
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
