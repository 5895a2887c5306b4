package resolve

import (
	"reflect"
	"testing"

	"github.com/Drommedhar/novalist-sub000/internal/frontmatter"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

func baseSheet() *sheet.EntitySheet {
	return sheet.Parse(`## CharacterSheet
Name: Liam
Role: Side
Age: 1990-06-15
CustomProperties:
- Allegiance: The Watch
- Scar: left cheek
ChapterOverrides:
Chapter: Ch1
Scene: S1
Role: Main
CustomProperties:
- Allegiance: None
Chapter: Ch1
Role: Suspect
Act: Act I
Role: Narrator
Images:
- Mask: images/narrator.png

## Images
- Portrait: images/liam.png
`)
}

func TestResolve(t *testing.T) {
	t.Run("scene outranks chapter", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch1", Scene: "S1"}, Options{})
		if got := attrs.Fields.Value("Role"); got != "Main" {
			t.Fatalf("expected scene override, got %q", got)
		}
		if got := attrs.CustomProperties.Value("Allegiance"); got != "None" {
			t.Fatalf("expected merged custom property, got %q", got)
		}
		if got := attrs.CustomProperties.Value("Scar"); got != "left cheek" {
			t.Fatalf("unmatched custom properties must pass through, got %q", got)
		}
	})

	t.Run("chapter override", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch1"}, Options{})
		if got := attrs.Fields.Value("Role"); got != "Suspect" {
			t.Fatalf("expected chapter override, got %q", got)
		}
		if got := attrs.Fields.Value("Name"); got != "Liam" {
			t.Fatalf("untouched fields must pass through, got %q", got)
		}
	})

	t.Run("chapter beats act", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch1", Act: "Act I"}, Options{})
		if got := attrs.Fields.Value("Role"); got != "Suspect" {
			t.Fatalf("chapter must outrank act, got %q", got)
		}
	})

	t.Run("act fallback replaces images wholesale", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch9", Act: "Act I"}, Options{})
		if got := attrs.Fields.Value("Role"); got != "Narrator" {
			t.Fatalf("expected act override, got %q", got)
		}
		want := []sheet.Image{{Label: "Mask", Path: "images/narrator.png"}}
		if !reflect.DeepEqual(attrs.Images, want) {
			t.Fatalf("override images must replace base list: %+v", attrs.Images)
		}
	})

	t.Run("no match returns base verbatim", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch2"}, Options{})
		if got := attrs.Fields.Value("Role"); got != "Side" {
			t.Fatalf("expected base role, got %q", got)
		}
		want := []sheet.Image{{Label: "Portrait", Path: "images/liam.png"}}
		if !reflect.DeepEqual(attrs.Images, want) {
			t.Fatalf("expected base images: %+v", attrs.Images)
		}
	})

	t.Run("resolve does not mutate the sheet", func(t *testing.T) {
		s := baseSheet()
		Resolve(s, Context{Chapter: "Ch1", Scene: "S1"}, Options{})
		if got := s.Fields.Value("Role"); got != "Side" {
			t.Fatalf("sheet mutated: %q", got)
		}
		if got := s.CustomProperties.Value("Allegiance"); got != "The Watch" {
			t.Fatalf("sheet custom properties mutated: %q", got)
		}
	})
}

func TestDateBasedAge(t *testing.T) {
	t.Run("years", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch2"}, Options{
			AgeFromDate: true,
			Unit:        UnitYears,
			ContextDate: "2024-06-14",
		})
		if !attrs.HasAgeInterval || attrs.AgeInterval != 33 {
			t.Fatalf("expected 33 years, got %d (ok=%v)", attrs.AgeInterval, attrs.HasAgeInterval)
		}
	})

	t.Run("months", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch2"}, Options{
			AgeFromDate: true,
			Unit:        UnitMonths,
			ContextDate: "1990-09-20",
		})
		if !attrs.HasAgeInterval || attrs.AgeInterval != 3 {
			t.Fatalf("expected 3 months, got %d (ok=%v)", attrs.AgeInterval, attrs.HasAgeInterval)
		}
	})

	t.Run("unparsable age yields none", func(t *testing.T) {
		s := sheet.Parse("## CharacterSheet\nName: X\nAge: about forty\n")
		attrs := Resolve(s, Context{Chapter: "Ch1"}, Options{
			AgeFromDate: true,
			Unit:        UnitYears,
			ContextDate: "2024-01-01",
		})
		if attrs.HasAgeInterval {
			t.Fatalf("expected no interval for unparsable age")
		}
	})

	t.Run("missing context date yields none", func(t *testing.T) {
		attrs := Resolve(baseSheet(), Context{Chapter: "Ch2"}, Options{
			AgeFromDate: true,
			Unit:        UnitYears,
		})
		if attrs.HasAgeInterval {
			t.Fatalf("expected no interval without a context date")
		}
	})
}

func TestContextDate(t *testing.T) {
	doc := frontmatter.Decode("---\norder: 3\ndate: 2024-05-01\ndates:\n  S1: 2024-05-02\n  S2: 2024-05-09\n---\n")

	t.Run("scene date wins", func(t *testing.T) {
		if got := ContextDate(doc.Fields, Context{Chapter: "Ch3", Scene: "S2"}); got != "2024-05-09" {
			t.Fatalf("unexpected date: %q", got)
		}
	})

	t.Run("flat fallback", func(t *testing.T) {
		if got := ContextDate(doc.Fields, Context{Chapter: "Ch3"}); got != "2024-05-01" {
			t.Fatalf("unexpected date: %q", got)
		}
	})

	t.Run("unknown scene falls back", func(t *testing.T) {
		if got := ContextDate(doc.Fields, Context{Chapter: "Ch3", Scene: "S9"}); got != "2024-05-01" {
			t.Fatalf("unexpected date: %q", got)
		}
	})
}

func TestParseDate(t *testing.T) {
	cases := map[string]bool{
		"2024-05-01": true,
		"01.05.2024": true,
		"2024/05/01": true,
		"yesterday":  false,
		"":           false,
	}
	for input, want := range cases {
		if _, ok := ParseDate(input); ok != want {
			t.Fatalf("ParseDate(%q) = %v, want %v", input, ok, want)
		}
	}
}
