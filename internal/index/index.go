// Package index maintains the project's entity name index and answers
// mention queries against prose: which entity a text position refers to,
// and which entities appear in a passage.
package index

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

// File is one candidate document reported by the file-listing provider.
// Name is the file base name without extension.
type File struct {
	Path string
	Name string
}

// Entry is one indexed entity.
type Entry struct {
	Name     string
	Path     string
	Category sheet.Category
}

// Scopes maps each entity category to its folders. A file outside every
// scope folder is not indexed.
type Scopes map[sheet.Category][]string

// Category returns the category whose scope contains path.
func (s Scopes) Category(path string) (sheet.Category, bool) {
	clean := filepath.Clean(path)
	for _, category := range sheet.Categories() {
		for _, folder := range s[category] {
			folder = filepath.Clean(folder)
			if clean == folder || strings.HasPrefix(clean, folder+string(os.PathSeparator)) {
				return category, true
			}
		}
	}
	return sheet.CategoryUnknown, false
}

type entry struct {
	Entry
	fullRe  *regexp.Regexp
	firstRe *regexp.Regexp
}

// Index is an immutable snapshot of the known entity names. It is rebuilt
// wholesale and replaced, never mutated, so a held reference is always
// internally consistent.
type Index struct {
	byLower map[string]*entry
	names   []string // sorted, original spelling
	matcher *regexp.Regexp
}

// Build indexes every file whose path falls under a scope folder. The file
// base name is the lookup key; on a name collision the later file wins, a
// documented limitation of name-keyed lookup.
func Build(files []File, scopes Scopes) *Index {
	idx := &Index{byLower: make(map[string]*entry)}

	for _, f := range files {
		category, ok := scopes.Category(f.Path)
		if !ok {
			continue
		}
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		e := &entry{Entry: Entry{Name: name, Path: f.Path, Category: category}}
		e.fullRe = wordPattern(name)
		if first, _, multi := strings.Cut(name, " "); multi && first != "" {
			e.firstRe = wordPattern(first)
		}
		idx.byLower[strings.ToLower(name)] = e
	}

	for _, e := range idx.byLower {
		idx.names = append(idx.names, e.Name)
	}
	sort.Strings(idx.names)
	idx.matcher = buildPattern(idx.names)
	return idx
}

// Len returns the number of indexed entities.
func (i *Index) Len() int {
	return len(i.names)
}

// Names returns every indexed name in sorted order.
func (i *Index) Names() []string {
	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}

// Lookup resolves a name case-insensitively.
func (i *Index) Lookup(name string) (Entry, bool) {
	if e, ok := i.byLower[strings.ToLower(name)]; ok {
		return e.Entry, true
	}
	return Entry{}, false
}

// Entries returns every entry, sorted by name.
func (i *Index) Entries() []Entry {
	out := make([]Entry, 0, len(i.names))
	for _, name := range i.names {
		out = append(out, i.byLower[strings.ToLower(name)].Entry)
	}
	return out
}

// buildPattern compiles one case-insensitive whole-word alternation over all
// names. Names are sorted by descending length first so that at any position
// the longest name wins: "Anna Maria" is preferred over "Anna".
func buildPattern(names []string) *regexp.Regexp {
	if len(names) == 0 {
		return nil
	}
	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.Slice(ordered, func(a, b int) bool {
		if len(ordered[a]) != len(ordered[b]) {
			return len(ordered[a]) > len(ordered[b])
		}
		return ordered[a] < ordered[b]
	})
	quoted := make([]string, len(ordered))
	for i, name := range ordered {
		quoted[i] = regexp.QuoteMeta(name)
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil
	}
	return re
}

func wordPattern(word string) *regexp.Regexp {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return nil
	}
	return re
}
