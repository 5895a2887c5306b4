// Package frontmatter decodes and encodes the metadata block at the top of a
// project document. The block is delimited by `---` lines and holds scalar
// fields plus at most one level of nested scalar maps (for example a
// date-per-scene map on a chapter file).
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Doc is a decoded document: its frontmatter fields and the body that
// follows the closing delimiter, byte-for-byte.
type Doc struct {
	Fields *Map
	Body   string
}

// Decode splits raw into frontmatter fields and body. A document that does
// not start with a delimiter line, or whose block is never closed, yields an
// empty field map and the whole text as body. Decode never fails; a block
// that is not well-formed degrades to empty fields.
func Decode(raw string) Doc {
	fields := NewMap()

	first, firstEnd := cutLine(raw, 0)
	if strings.TrimRight(first, "\r") != delimiter {
		return Doc{Fields: fields, Body: raw}
	}

	pos := firstEnd
	for pos <= len(raw) {
		line, lineEnd := cutLine(raw, pos)
		if strings.TrimRight(line, "\r") == delimiter {
			decodeBlock(raw[firstEnd:pos], fields)
			return Doc{Fields: fields, Body: raw[lineEnd:]}
		}
		if lineEnd == pos {
			break
		}
		pos = lineEnd
	}

	// Unterminated block: treat the document as body-only.
	return Doc{Fields: NewMap(), Body: raw}
}

// Encode renders fields as a delimited frontmatter block. Scalars become
// `key: value` lines; nested maps become a bare `key:` line followed by
// two-space-indented subkeys. Empty nested maps are omitted entirely.
func Encode(fields *Map) string {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if fields != nil {
		for _, key := range fields.Keys() {
			if nested, ok := fields.Nested(key); ok {
				if nested.Len() == 0 {
					continue
				}
				sub := &yaml.Node{Kind: yaml.MappingNode}
				for _, subkey := range nested.Keys() {
					value, _ := nested.Get(subkey)
					appendPair(sub, subkey, value)
				}
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: key}, sub)
				continue
			}
			value, _ := fields.Get(key)
			appendPair(root, key, value)
		}
	}

	var sb strings.Builder
	sb.WriteString(delimiter)
	sb.WriteString("\n")
	if len(root.Content) > 0 {
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(2)
		// Encoding a mapping of scalar leaves cannot fail.
		_ = enc.Encode(root)
		_ = enc.Close()
	}
	sb.WriteString(delimiter)
	sb.WriteString("\n")
	return sb.String()
}

// cutLine returns the line starting at pos (without its newline) and the
// offset just past the newline.
func cutLine(s string, pos int) (string, int) {
	if pos >= len(s) {
		return "", pos
	}
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		return s[pos : pos+i], pos + i + 1
	}
	return s[pos:], len(s)
}

func decodeBlock(block string, fields *Map) {
	block = strings.ReplaceAll(block, "\r\n", "\n")

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(block), &node); err != nil {
		return
	}
	if len(node.Content) == 0 {
		return
	}
	mapping := node.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		switch value.Kind {
		case yaml.ScalarNode:
			fields.Set(key.Value, value.Value)
		case yaml.MappingNode:
			nested := NewMap()
			for j := 0; j+1 < len(value.Content); j += 2 {
				subkey := value.Content[j]
				subvalue := value.Content[j+1]
				if subkey.Kind != yaml.ScalarNode || subvalue.Kind != yaml.ScalarNode {
					continue
				}
				nested.Set(subkey.Value, subvalue.Value)
			}
			fields.SetNested(key.Value, nested)
		}
	}
}

func appendPair(mapping *yaml.Node, key, value string) {
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value})
}
