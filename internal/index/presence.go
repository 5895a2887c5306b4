package index

import (
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

// ScanPresence reports which indexed entities appear in text, grouped by
// category. An entity is present when its full name, or for multi-word
// names its first token, occurs as a whole word anywhere in the text,
// case-insensitively. Only presence is reported, not occurrence offsets.
func (i *Index) ScanPresence(text string) map[sheet.Category][]string {
	out := make(map[sheet.Category][]string)
	for _, name := range i.names {
		e := i.byLower[strings.ToLower(name)]
		found := e.fullRe != nil && e.fullRe.MatchString(text)
		if !found && e.firstRe != nil {
			found = e.firstRe.MatchString(text)
		}
		if found {
			out[e.Category] = append(out[e.Category], e.Name)
		}
	}
	return out
}
