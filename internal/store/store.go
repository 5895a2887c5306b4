// Package store defines the persisted project catalog: the entity index,
// per-chapter presence results, and aggregated property values, as written
// by `novalist index --save` and `novalist scan --save` and read by the
// query commands. Backends live in the sqlite and postgres subpackages.
package store

import "context"

// IndexEntry mirrors one entity index entry.
type IndexEntry struct {
	Name     string
	Path     string
	Category string
}

// PresenceEntry records that an entity appears in a chapter's prose.
type PresenceEntry struct {
	Chapter  string
	Category string
	Name     string
}

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// ReplaceEntries swaps the persisted index wholesale, matching the
	// in-memory rebuild model.
	ReplaceEntries(ctx context.Context, entries []IndexEntry) error
	ListEntries(ctx context.Context, category string) ([]IndexEntry, error)

	ReplacePresence(ctx context.Context, chapter string, present []PresenceEntry) error
	PresenceForChapter(ctx context.Context, chapter string) ([]PresenceEntry, error)
	ChaptersFor(ctx context.Context, name string) ([]string, error)

	ReplacePropertyValues(ctx context.Context, values map[string][]string) error
	PropertyKeys(ctx context.Context) ([]string, error)
	PropertyValues(ctx context.Context, key string) ([]string, error)
}
