// Package vault is the project's file-system collaborator: it lists the
// markdown documents under a project root, reads their contents, and watches
// the scope folders for changes. The parsing and indexing core never touches
// the file system itself.
package vault

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/index"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

type Vault struct {
	root    string
	exclude []string
}

func New(root string, exclude []string) *Vault {
	cleaned := make([]string, 0, len(exclude))
	for _, path := range exclude {
		if path == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(filepath.Join(root, path)))
	}
	return &Vault{root: filepath.Clean(root), exclude: cleaned}
}

func (v *Vault) Root() string {
	return v.root
}

// List walks the project root for markdown files. Unreadable entries are
// skipped so that one bad file never aborts an index rebuild.
func (v *Vault) List() ([]index.File, error) {
	var files []index.File
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if v.isExcluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		if v.isExcluded(path) {
			return nil
		}
		files = append(files, index.File{
			Path: path,
			Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (v *Vault) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v *Vault) Write(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// Scopes resolves per-category folders (relative to the root) into an
// index scope set.
func (v *Vault) Scopes(characters, locations, items, lore []string) index.Scopes {
	join := func(folders []string) []string {
		out := make([]string, 0, len(folders))
		for _, folder := range folders {
			if folder == "" {
				continue
			}
			out = append(out, filepath.Join(v.root, folder))
		}
		return out
	}
	return index.Scopes{
		sheet.CategoryCharacter: join(characters),
		sheet.CategoryLocation:  join(locations),
		sheet.CategoryItem:      join(items),
		sheet.CategoryLore:      join(lore),
	}
}

func (v *Vault) isExcluded(path string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range v.exclude {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
