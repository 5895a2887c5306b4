package index

import "fmt"

// Lister enumerates candidate documents; the vault implements it.
type Lister interface {
	List() ([]File, error)
}

// Service owns the one mutable index of a project scope. The index is
// replaced wholesale on rebuild, never mutated in place, so callers holding
// a snapshot from Current always see a fully-old or fully-new index. The
// service is passed explicitly to its consumers; there is no package-level
// instance.
type Service struct {
	lister  Lister
	scopes  Scopes
	current *Index
}

func NewService(lister Lister, scopes Scopes) *Service {
	return &Service{
		lister:  lister,
		scopes:  scopes,
		current: Build(nil, scopes),
	}
}

// Rebuild re-lists the scope folders and swaps in a fresh index. The old
// index stays valid for anyone still holding it. Callers are expected to
// debounce bursts of change notifications themselves.
func (s *Service) Rebuild() error {
	files, err := s.lister.List()
	if err != nil {
		return fmt.Errorf("listing project files: %w", err)
	}
	s.current = Build(files, s.scopes)
	return nil
}

// Current returns the live index snapshot.
func (s *Service) Current() *Index {
	return s.current
}
