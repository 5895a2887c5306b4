package sheet

import (
	"reflect"
	"testing"
)

const sampleCharacter = `---
guid: abc
---
## CharacterSheet
Name: Liam
Surname: Calder
Gender: m
Age: 31
Role: Side
Hair Color: brown
CustomProperties:
- Allegiance: The Watch
- Scar: left cheek
ChapterOverrides:
Chapter: Ch1
Scene: S1
Role: Main
CustomProperties:
- Allegiance: None
Chapter: Ch2
Role: Antagonist
Images:
- Portrait: images/liam-ch2.png
Act: Act I
Role: Narrator

## Relationships
- Mentor: Edda Calder
- Rival: Jon Pike

## Images
- Portrait: images/liam.png

## Description
Liam grew up near the tower.
`

func TestParse(t *testing.T) {
	t.Run("full character sheet", func(t *testing.T) {
		s := Parse(sampleCharacter)
		if s.Category != CategoryCharacter {
			t.Fatalf("expected character, got %q", s.Category)
		}
		if got := s.Fields.Value("Name"); got != "Liam" {
			t.Fatalf("expected Name Liam, got %q", got)
		}
		if got := s.Fields.Value("Hair Color"); got != "brown" {
			t.Fatalf("expected free-form field, got %q", got)
		}
		if got := s.CustomProperties.Value("Allegiance"); got != "The Watch" {
			t.Fatalf("expected custom property, got %q", got)
		}
		if len(s.Overrides) != 3 {
			t.Fatalf("expected 3 overrides, got %d", len(s.Overrides))
		}

		first := s.Overrides[0]
		if first.Selector != (Selector{Chapter: "Ch1", Scene: "S1"}) {
			t.Fatalf("unexpected selector: %+v", first.Selector)
		}
		if got := first.Fields.Value("Role"); got != "Main" {
			t.Fatalf("expected override role Main, got %q", got)
		}
		if got := first.CustomProperties.Value("Allegiance"); got != "None" {
			t.Fatalf("expected override custom property, got %q", got)
		}

		second := s.Overrides[1]
		if second.Selector != (Selector{Chapter: "Ch2"}) {
			t.Fatalf("unexpected selector: %+v", second.Selector)
		}
		want := []Image{{Label: "Portrait", Path: "images/liam-ch2.png"}}
		if !reflect.DeepEqual(second.Images, want) {
			t.Fatalf("unexpected override images: %+v", second.Images)
		}

		third := s.Overrides[2]
		if third.Selector != (Selector{Act: "Act I"}) {
			t.Fatalf("act override must not carry chapter or scene: %+v", third.Selector)
		}
		if got := third.Fields.Value("Role"); got != "Narrator" {
			t.Fatalf("expected act override role, got %q", got)
		}
	})

	t.Run("document sections", func(t *testing.T) {
		s := Parse(sampleCharacter)
		wantRels := []Relationship{
			{Role: "Mentor", Target: "Edda Calder"},
			{Role: "Rival", Target: "Jon Pike"},
		}
		if !reflect.DeepEqual(s.Relationships, wantRels) {
			t.Fatalf("unexpected relationships: %+v", s.Relationships)
		}
		wantImages := []Image{{Label: "Portrait", Path: "images/liam.png"}}
		if !reflect.DeepEqual(s.Images, wantImages) {
			t.Fatalf("unexpected images: %+v", s.Images)
		}
		if len(s.Sections) != 1 || s.Sections[0].Title != "Description" {
			t.Fatalf("unexpected sections: %+v", s.Sections)
		}
		if s.Sections[0].Content != "Liam grew up near the tower." {
			t.Fatalf("unexpected section content: %q", s.Sections[0].Content)
		}
	})

	t.Run("no sheet heading", func(t *testing.T) {
		s := Parse("Just a prose chapter.\n\n## Notes\nNothing here.")
		if s.Category != CategoryUnknown {
			t.Fatalf("expected unknown category, got %q", s.Category)
		}
		if s.Fields.Len() != 0 {
			t.Fatalf("expected empty fields, got %d", s.Fields.Len())
		}
		if len(s.Overrides) != 0 {
			t.Fatalf("expected no overrides, got %d", len(s.Overrides))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		s := Parse("")
		if s.Fields.Len() != 0 || len(s.Overrides) != 0 {
			t.Fatalf("expected empty sheet")
		}
	})

	t.Run("corrupted value discarded", func(t *testing.T) {
		s := Parse("## CharacterSheet\nName: Anna CustomProperties: - Oops: yes\nAge: 20\n")
		if got := s.Fields.Value("Name"); got != "" {
			t.Fatalf("bleeding value must be discarded, got %q", got)
		}
		if !s.Fields.Has("Name") {
			t.Fatalf("field must still be reported, as empty")
		}
		if got := s.Fields.Value("Age"); got != "20" {
			t.Fatalf("clean sibling field must survive, got %q", got)
		}
	})

	t.Run("template id", func(t *testing.T) {
		s := Parse("## ItemSheet\nTemplate: artifact\nName: Moonblade\n")
		if s.TemplateID != "artifact" {
			t.Fatalf("expected template artifact, got %q", s.TemplateID)
		}
		s = Parse("## LoreSheet\nName: The Sundering\n")
		if s.TemplateID != "lore" {
			t.Fatalf("expected category fallback, got %q", s.TemplateID)
		}
	})

	t.Run("scene requires chapter", func(t *testing.T) {
		s := Parse("## CharacterSheet\nName: X\nChapterOverrides:\nScene: S1\nRole: Main\n")
		if len(s.Overrides) != 0 {
			t.Fatalf("scene without chapter must not create an override: %+v", s.Overrides)
		}
	})

	t.Run("crlf input", func(t *testing.T) {
		s := Parse("## LocationSheet\r\nName: Tower of Light\r\nRegion: North\r\n")
		if got := s.Fields.Value("Name"); got != "Tower of Light" {
			t.Fatalf("unexpected name: %q", got)
		}
		if s.Category != CategoryLocation {
			t.Fatalf("expected location, got %q", s.Category)
		}
	})
}
