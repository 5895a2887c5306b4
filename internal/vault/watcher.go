package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Op classifies a change notification.
type Op int

const (
	OpCreate Op = iota
	OpModify
	OpRemove
	OpRename
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	}
	return "unknown"
}

// Event is one markdown file change inside the watched folders.
type Event struct {
	Path string
	Op   Op
}

// Watch reports markdown changes under the vault root until ctx is
// cancelled. Newly created directories are added to the watch on the fly.
// Debouncing bursts is the handler's concern.
func (v *Vault) Watch(ctx context.Context, handler func(Event)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addRecursive(watcher, v.root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				// A new directory needs its own watch before events
				// inside it can be seen.
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name)
				}
			}
			op, relevant := mapOp(event.Op)
			if !relevant || !isMarkdown(event.Name) || v.isExcluded(event.Name) {
				continue
			}
			handler(Event{Path: event.Name, Op: op})
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; keep watching.
		}
	}
}

func mapOp(op fsnotify.Op) (Op, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpModify, true
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	}
	return 0, false
}

func isMarkdown(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".md")
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
