package sheet

import "strings"

const (
	labelCustomProperties = "CustomProperties:"
	labelChapterOverrides = "ChapterOverrides:"
	labelImages           = "Images:"
	labelRelationships    = "Relationships:"
	labelChapter          = "Chapter:"
	labelScene            = "Scene:"
	labelAct              = "Act:"
)

// fieldLabels are the labels whose presence inside a captured value marks the
// value as section bleed from a neighbouring field. Such values are discarded
// and the field reported empty.
var fieldLabels = []string{
	"Name:", "Surname:", "Gender:", "Age:", "Role:",
	labelCustomProperties, labelChapterOverrides,
	labelChapter, labelScene, labelAct,
	labelImages, labelRelationships,
}

type parseMode int

const (
	modeBase parseMode = iota
	modeCustom
	modeOverrides
)

type overrideBlock int

const (
	blockFields overrideBlock = iota
	blockCustom
	blockImages
)

// Parse derives an EntitySheet from raw document text. It never fails: a
// document without a recognized sheet heading yields an empty sheet, and
// malformed lines are skipped.
func Parse(raw string) *EntitySheet {
	s := &EntitySheet{Fields: NewFields(), CustomProperties: NewFields()}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if title, ok := headingTitle(line); ok {
			if category, ok := CategoryForHeading(title); ok {
				s.Category = category
				start = i + 1
				break
			}
		}
	}
	if start < 0 {
		return s
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if _, ok := headingTitle(lines[i]); ok {
			end = i
			break
		}
	}

	parseSheetSection(s, lines[start:end])
	parseDocumentSections(s, lines, end)

	if template, ok := s.Fields.Get("Template"); ok && template != "" {
		s.TemplateID = template
	} else {
		s.TemplateID = string(s.Category)
	}
	return s
}

func parseSheetSection(s *EntitySheet, lines []string) {
	mode := modeBase
	block := blockFields
	var current *Override

	flush := func() {
		if current != nil && current.Selector != (Selector{}) {
			s.Overrides = append(s.Overrides, *current)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch mode {
		case modeBase:
			switch {
			case trimmed == labelCustomProperties:
				mode = modeCustom
			case trimmed == labelChapterOverrides:
				mode = modeOverrides
			default:
				if key, value, ok := splitKeyValue(trimmed); ok {
					s.Fields.Set(key, guardValue(key, value))
				}
			}

		case modeCustom:
			switch {
			case trimmed == labelChapterOverrides:
				mode = modeOverrides
			case isBullet(trimmed):
				if key, value, ok := bulletKeyValue(trimmed); ok {
					s.CustomProperties.Set(key, guardValue(key, value))
				}
			}

		case modeOverrides:
			switch {
			case strings.HasPrefix(trimmed, labelChapter):
				flush()
				current = newOverride()
				current.Selector.Chapter = strings.TrimSpace(trimmed[len(labelChapter):])
				block = blockFields
			case strings.HasPrefix(trimmed, labelAct):
				// An act selector never carries a chapter or scene, so an
				// Act line always opens its own segment.
				flush()
				current = newOverride()
				current.Selector.Act = strings.TrimSpace(trimmed[len(labelAct):])
				block = blockFields
			case strings.HasPrefix(trimmed, labelScene):
				if current != nil && current.Selector.Chapter != "" {
					current.Selector.Scene = strings.TrimSpace(trimmed[len(labelScene):])
				}
				block = blockFields
			case trimmed == labelCustomProperties:
				block = blockCustom
			case trimmed == labelImages:
				block = blockImages
			case isBullet(trimmed):
				if current == nil {
					continue
				}
				switch block {
				case blockCustom:
					if key, value, ok := bulletKeyValue(trimmed); ok {
						current.CustomProperties.Set(key, guardValue(key, value))
					}
				case blockImages:
					current.Images = append(current.Images, bulletImage(trimmed))
				}
			default:
				if current == nil {
					continue
				}
				if key, value, ok := splitKeyValue(trimmed); ok {
					current.Fields.Set(key, guardValue(key, value))
					block = blockFields
				}
			}
		}
	}
	flush()
}

// parseDocumentSections collects the document headings outside the sheet
// section: Images and Relationships get structured parses, everything else
// is kept as a titled text section.
func parseDocumentSections(s *EntitySheet, lines []string, sheetEnd int) {
	type span struct {
		title string
		start int
		end   int
	}
	var spans []span
	for i := sheetEnd; i < len(lines); i++ {
		title, ok := headingTitle(lines[i])
		if !ok {
			continue
		}
		if len(spans) > 0 {
			spans[len(spans)-1].end = i
		}
		spans = append(spans, span{title: title, start: i + 1, end: len(lines)})
	}

	for _, sp := range spans {
		if _, ok := CategoryForHeading(sp.title); ok {
			continue
		}
		body := lines[sp.start:sp.end]
		switch sp.title {
		case "Images":
			for _, line := range body {
				trimmed := strings.TrimSpace(line)
				if isBullet(trimmed) {
					s.Images = append(s.Images, bulletImage(trimmed))
				}
			}
		case "Relationships":
			for _, line := range body {
				trimmed := strings.TrimSpace(line)
				if !isBullet(trimmed) {
					continue
				}
				if role, target, ok := bulletKeyValue(trimmed); ok {
					s.Relationships = append(s.Relationships, Relationship{Role: role, Target: target})
				} else {
					s.Relationships = append(s.Relationships, Relationship{Target: strings.TrimSpace(trimmed[2:])})
				}
			}
		default:
			content := strings.TrimSpace(strings.Join(body, "\n"))
			s.Sections = append(s.Sections, Section{Title: sp.title, Content: content})
		}
	}
}

func newOverride() *Override {
	return &Override{Fields: NewFields(), CustomProperties: NewFields()}
}

func headingTitle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "## ") {
		return "", false
	}
	return strings.TrimSpace(trimmed[3:]), true
}

func isBullet(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ")
}

// splitKeyValue parses a `Key: value` line. The key must be non-empty and
// must not look like prose (no colon means no field).
func splitKeyValue(trimmed string) (string, string, bool) {
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" || strings.HasPrefix(key, "#") {
		return "", "", false
	}
	return key, strings.TrimSpace(trimmed[idx+1:]), true
}

func bulletKeyValue(trimmed string) (string, string, bool) {
	return splitKeyValue(strings.TrimSpace(trimmed[2:]))
}

func bulletImage(trimmed string) Image {
	if label, path, ok := bulletKeyValue(trimmed); ok {
		return Image{Label: label, Path: path}
	}
	return Image{Path: strings.TrimSpace(trimmed[2:])}
}

// guardValue discards a captured value that contains the label of another
// known field; such values are section bleed, not data.
func guardValue(key, value string) string {
	own := key + ":"
	for _, label := range fieldLabels {
		if label == own {
			continue
		}
		if strings.Contains(value, label) {
			return ""
		}
	}
	return value
}
