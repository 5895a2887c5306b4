package index

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FindMentionAt resolves the entity named at a byte offset in text. The
// whole-name matcher runs first; if no match span contains the offset, the
// word touching the offset is tried as an exact key, then as a first name
// (a key starting with "word "), then as a bare key prefix. Prefix
// candidates are scanned in sorted-name order, so ties between entities
// sharing a first name resolve alphabetically rather than by insertion
// order.
func (i *Index) FindMentionAt(text string, offset int) (Entry, bool) {
	if offset < 0 || offset > len(text) {
		return Entry{}, false
	}

	if i.matcher != nil {
		for _, span := range i.matcher.FindAllStringIndex(text, -1) {
			if span[0] > offset {
				break
			}
			if offset <= span[1] {
				return i.Lookup(text[span[0]:span[1]])
			}
		}
	}

	word := wordAt(text, offset)
	if word == "" {
		return Entry{}, false
	}
	lower := strings.ToLower(word)

	if e, ok := i.byLower[lower]; ok {
		return e.Entry, true
	}
	for _, name := range i.names {
		if strings.HasPrefix(strings.ToLower(name), lower+" ") {
			return i.Lookup(name)
		}
	}
	for _, name := range i.names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i.Lookup(name)
		}
	}
	return Entry{}, false
}

// wordAt extracts the word touching a byte offset: the run of letters and
// digits containing the offset, or ending directly before it.
func wordAt(text string, offset int) string {
	if len(text) == 0 {
		return ""
	}
	if offset >= len(text) || !isWordByte(text, offset) {
		// Cursor sits just past a word.
		if offset == 0 || !isWordByte(text, prevRuneStart(text, offset)) {
			return ""
		}
		offset = prevRuneStart(text, offset)
	}

	start := offset
	for start > 0 {
		prev := prevRuneStart(text, start)
		if !isWordByte(text, prev) {
			break
		}
		start = prev
	}
	end := offset
	for end < len(text) && isWordByte(text, end) {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[start:end]
}

func isWordByte(text string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func prevRuneStart(text string, pos int) int {
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	return pos - size
}
