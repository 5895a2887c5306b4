package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/store"
)

func (c *Client) ReplaceEntries(ctx context.Context, entries []store.IndexEntry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}

	query := `
	INSERT INTO entries (name_normalized, name, path, category)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (name_normalized) DO UPDATE SET
		name = excluded.name,
		path = excluded.path,
		category = excluded.category
	`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query, strings.ToLower(e.Name), e.Name, e.Path, e.Category); err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entries: %w", err)
	}
	return nil
}

func (c *Client) ListEntries(ctx context.Context, category string) ([]store.IndexEntry, error) {
	query := `
	SELECT name, path, category
	FROM entries
	WHERE (? = '' OR category = ?)
	ORDER BY name
	`
	rows, err := c.db.QueryContext(ctx, query, category, category)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (c *Client) ReplacePresence(ctx context.Context, chapter string, present []store.PresenceEntry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM presence WHERE chapter = ?`, chapter); err != nil {
		return fmt.Errorf("clearing presence for %s: %w", chapter, err)
	}

	query := `
	INSERT INTO presence (chapter, category, name)
	VALUES (?, ?, ?)
	ON CONFLICT (chapter, name) DO UPDATE SET category = excluded.category
	`
	for _, p := range present {
		if _, err := tx.ExecContext(ctx, query, chapter, p.Category, p.Name); err != nil {
			return fmt.Errorf("inserting presence %s/%s: %w", chapter, p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing presence: %w", err)
	}
	return nil
}

func (c *Client) PresenceForChapter(ctx context.Context, chapter string) ([]store.PresenceEntry, error) {
	query := `
	SELECT chapter, category, name
	FROM presence
	WHERE chapter = ?
	ORDER BY category, name
	`
	rows, err := c.db.QueryContext(ctx, query, chapter)
	if err != nil {
		return nil, fmt.Errorf("reading presence: %w", err)
	}
	defer rows.Close()

	var out []store.PresenceEntry
	for rows.Next() {
		var p store.PresenceEntry
		if err := rows.Scan(&p.Chapter, &p.Category, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning presence: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (c *Client) ChaptersFor(ctx context.Context, name string) ([]string, error) {
	query := `
	SELECT DISTINCT chapter
	FROM presence
	WHERE name = ?
	ORDER BY chapter
	`
	rows, err := c.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("reading chapters: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var chapter string
		if err := rows.Scan(&chapter); err != nil {
			return nil, fmt.Errorf("scanning chapter: %w", err)
		}
		out = append(out, chapter)
	}
	return out, rows.Err()
}

func (c *Client) ReplacePropertyValues(ctx context.Context, values map[string][]string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_values`); err != nil {
		return fmt.Errorf("clearing property values: %w", err)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	query := `
	INSERT INTO property_values (key, value)
	VALUES (?, ?)
	ON CONFLICT (key, value) DO NOTHING
	`
	for _, key := range keys {
		for _, value := range values[key] {
			if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
				return fmt.Errorf("inserting property value %s: %w", key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing property values: %w", err)
	}
	return nil
}

func (c *Client) PropertyKeys(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT DISTINCT key FROM property_values ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("reading property keys: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning property key: %w", err)
		}
		out = append(out, key)
	}
	return out, rows.Err()
}

func (c *Client) PropertyValues(ctx context.Context, key string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT value FROM property_values WHERE key = ? ORDER BY value`, key)
	if err != nil {
		return nil, fmt.Errorf("reading property values: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scanning property value: %w", err)
		}
		out = append(out, value)
	}
	return out, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]store.IndexEntry, error) {
	var out []store.IndexEntry
	for rows.Next() {
		var e store.IndexEntry
		if err := rows.Scan(&e.Name, &e.Path, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
