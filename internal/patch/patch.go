// Package patch applies targeted edits to raw document text. It is text
// surgery, not a parse/re-serialize round trip: everything outside the
// edited line or frontmatter block is preserved byte-for-byte, including
// content the parser does not recognize.
package patch

import (
	"strings"

	"github.com/Drommedhar/novalist-sub000/internal/frontmatter"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

// headerKeys is the fixed field order kept at the top of a sheet. A newly
// inserted field goes right after the last of these that is present.
var headerKeys = []string{"Name", "Surname", "Gender", "Age"}

// SetField replaces the value of one base field inside the category's sheet
// section, or inserts the field if absent. Documents without that section
// are returned unchanged; callers confirm the file's category first.
func SetField(raw string, category sheet.Category, key, value string) string {
	heading := category.Heading()
	if heading == "" {
		return raw
	}

	lines := splitKeepEnds(raw)

	start := -1
	for i, line := range lines {
		if headingTitle(line) == heading {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return raw
	}

	// The base-field region ends at the next heading or at the first
	// sub-block label, so override fields are never touched.
	end := len(lines)
	for i := start; i < len(lines); i++ {
		trimmed := trimLine(lines[i])
		if strings.HasPrefix(trimmed, "## ") ||
			trimmed == "CustomProperties:" || trimmed == "ChapterOverrides:" {
			end = i
			break
		}
	}

	for i := start; i < end; i++ {
		trimmed := trimLine(lines[i])
		if strings.HasPrefix(trimmed, key+":") && !strings.HasPrefix(trimmed, "- ") {
			lines[i] = key + ": " + value + lineEnding(lines[i])
			return strings.Join(lines, "")
		}
	}

	// Absent field: insert after the last present header key to keep the
	// sheet's stable ordering.
	insertAt := start
	for i := start; i < end; i++ {
		trimmed := trimLine(lines[i])
		for _, header := range headerKeys {
			if strings.HasPrefix(trimmed, header+":") {
				insertAt = i + 1
			}
		}
	}

	ending := lineEnding(lines[insertAt-1])
	if ending == "" {
		ending = "\n"
		lines[insertAt-1] += ending
	}
	inserted := key + ": " + value + ending

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, inserted)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "")
}

// SetFrontmatterFields merges updates into the document's frontmatter and
// re-encodes the block, reattaching the body unmodified. An update value is
// either a scalar (string) or a nested scalar map (map[string]string); an
// empty scalar deletes the key, an empty map deletes the nested map.
func SetFrontmatterFields(raw string, updates map[string]any) string {
	if len(updates) == 0 {
		return raw
	}

	doc := frontmatter.Decode(raw)
	for key, value := range updates {
		switch v := value.(type) {
		case string:
			if v == "" {
				doc.Fields.Delete(key)
			} else {
				doc.Fields.Set(key, v)
			}
		case map[string]string:
			mergeNested(doc.Fields, key, v)
		case nil:
			doc.Fields.Delete(key)
		}
	}

	if doc.Fields.Len() == 0 && !strings.HasPrefix(raw, "---") {
		// Nothing to write and nothing was there before.
		return raw
	}
	return frontmatter.Encode(doc.Fields) + doc.Body
}

func mergeNested(fields *frontmatter.Map, key string, updates map[string]string) {
	if len(updates) == 0 {
		fields.Delete(key)
		return
	}
	nested, ok := fields.Nested(key)
	if !ok {
		nested = frontmatter.NewMap()
	}
	for subkey, value := range updates {
		if value == "" {
			nested.Delete(subkey)
		} else {
			nested.Set(subkey, value)
		}
	}
	if nested.Len() == 0 {
		fields.Delete(key)
		return
	}
	fields.SetNested(key, nested)
}

// splitKeepEnds splits raw into lines that retain their own terminators, so
// joining with "" reproduces the input exactly.
func splitKeepEnds(raw string) []string {
	var lines []string
	for pos := 0; pos < len(raw); {
		idx := strings.IndexByte(raw[pos:], '\n')
		if idx < 0 {
			lines = append(lines, raw[pos:])
			break
		}
		lines = append(lines, raw[pos:pos+idx+1])
		pos += idx + 1
	}
	return lines
}

func trimLine(line string) string {
	return strings.TrimSpace(line)
}

func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return "\n"
	}
	return ""
}

func headingTitle(line string) string {
	trimmed := trimLine(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return ""
	}
	return strings.TrimSpace(trimmed[3:])
}
