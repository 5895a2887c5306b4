// Package aggregate collects the observed values of every sheet field and
// custom property across a set of entity documents, powering search and
// filter suggestions.
package aggregate

import (
	"sort"

	"github.com/Drommedhar/novalist-sub000/internal/index"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

// Reader supplies document contents; the vault implements it.
type Reader interface {
	Read(path string) (string, error)
}

// Values parses every file and merges each base field and custom property
// value into a per-key set. Unreadable files are skipped; empty values are
// not recorded. The value lists come back sorted and deduplicated.
func Values(reader Reader, files []index.Entry) map[string][]string {
	seen := make(map[string]map[string]struct{})

	record := func(key, value string) {
		if value == "" {
			return
		}
		if seen[key] == nil {
			seen[key] = make(map[string]struct{})
		}
		seen[key][value] = struct{}{}
	}

	for _, f := range files {
		raw, err := reader.Read(f.Path)
		if err != nil {
			continue
		}
		s := sheet.Parse(raw)
		for _, key := range s.Fields.Keys() {
			record(key, s.Fields.Value(key))
		}
		for _, key := range s.CustomProperties.Keys() {
			record(key, s.CustomProperties.Value(key))
		}
	}

	out := make(map[string][]string, len(seen))
	for key, values := range seen {
		list := make([]string, 0, len(values))
		for value := range values {
			list = append(list, value)
		}
		sort.Strings(list)
		out[key] = list
	}
	return out
}
