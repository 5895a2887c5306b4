package frontmatter

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Run("flat scalars", func(t *testing.T) {
		doc := Decode("---\norder: 3\nguid: abc\n---\nBody text")
		if got, _ := doc.Fields.Get("order"); got != "3" {
			t.Fatalf("expected order 3, got %q", got)
		}
		if got, _ := doc.Fields.Get("guid"); got != "abc" {
			t.Fatalf("expected guid abc, got %q", got)
		}
		if doc.Body != "Body text" {
			t.Fatalf("unexpected body: %q", doc.Body)
		}
	})

	t.Run("nested map", func(t *testing.T) {
		doc := Decode("---\norder: 1\ndates:\n  Scene 1: 2024-05-01\n  Scene 2: 2024-05-03\n---\n")
		dates, ok := doc.Fields.Nested("dates")
		if !ok {
			t.Fatalf("expected nested dates map")
		}
		if got, _ := dates.Get("Scene 2"); got != "2024-05-03" {
			t.Fatalf("unexpected scene date: %q", got)
		}
		if doc.Body != "" {
			t.Fatalf("expected empty body, got %q", doc.Body)
		}
	})

	t.Run("no frontmatter", func(t *testing.T) {
		doc := Decode("Just prose.\nNo metadata here.")
		if doc.Fields.Len() != 0 {
			t.Fatalf("expected empty fields, got %d", doc.Fields.Len())
		}
		if doc.Body != "Just prose.\nNo metadata here." {
			t.Fatalf("body must be the whole text")
		}
	})

	t.Run("unterminated block", func(t *testing.T) {
		doc := Decode("---\norder: 3\nno closing marker")
		if doc.Fields.Len() != 0 {
			t.Fatalf("expected empty fields, got %d", doc.Fields.Len())
		}
		if doc.Body != "---\norder: 3\nno closing marker" {
			t.Fatalf("body must be the whole text")
		}
	})

	t.Run("crlf line endings", func(t *testing.T) {
		doc := Decode("---\r\norder: 7\r\n---\r\nBody")
		if got, _ := doc.Fields.Get("order"); got != "7" {
			t.Fatalf("expected order 7, got %q", got)
		}
		if doc.Body != "Body" {
			t.Fatalf("unexpected body: %q", doc.Body)
		}
	})

	t.Run("invalid yaml degrades to empty fields", func(t *testing.T) {
		doc := Decode("---\n: [ broken\n---\nBody")
		if doc.Fields.Len() != 0 {
			t.Fatalf("expected empty fields, got %d", doc.Fields.Len())
		}
		if doc.Body != "Body" {
			t.Fatalf("unexpected body: %q", doc.Body)
		}
	})

	t.Run("numbers keep their written form", func(t *testing.T) {
		doc := Decode("---\norder: 03\nweight: 1.50\n---\n")
		if got, _ := doc.Fields.Get("order"); got != "03" {
			t.Fatalf("expected 03, got %q", got)
		}
		if got, _ := doc.Fields.Get("weight"); got != "1.50" {
			t.Fatalf("expected 1.50, got %q", got)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		raw := "---\norder: 3\nguid: abc\ndates:\n  Scene 1: 2024-05-01\n---\nBody"
		doc := Decode(raw)
		again := Decode(Encode(doc.Fields) + doc.Body)
		if !doc.Fields.Equal(again.Fields) {
			t.Fatalf("round trip changed fields: %v vs %v", doc.Fields.Keys(), again.Fields.Keys())
		}
		if again.Body != "Body" {
			t.Fatalf("unexpected body: %q", again.Body)
		}
	})

	t.Run("field order preserved", func(t *testing.T) {
		fields := NewMap()
		fields.Set("zulu", "1")
		fields.Set("alpha", "2")
		encoded := Encode(fields)
		if strings.Index(encoded, "zulu") > strings.Index(encoded, "alpha") {
			t.Fatalf("insertion order lost:\n%s", encoded)
		}
	})

	t.Run("empty nested map omitted", func(t *testing.T) {
		fields := NewMap()
		fields.Set("order", "1")
		fields.SetNested("dates", NewMap())
		encoded := Encode(fields)
		if strings.Contains(encoded, "dates") {
			t.Fatalf("empty nested map must be omitted:\n%s", encoded)
		}
	})

	t.Run("empty map yields bare delimiters", func(t *testing.T) {
		if got := Encode(NewMap()); got != "---\n---\n" {
			t.Fatalf("unexpected encoding: %q", got)
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("delete removes key", func(t *testing.T) {
		m := NewMap()
		m.Set("a", "1")
		m.Set("b", "2")
		m.Delete("a")
		if _, ok := m.Get("a"); ok {
			t.Fatalf("expected a to be gone")
		}
		if got := m.Keys(); len(got) != 1 || got[0] != "b" {
			t.Fatalf("unexpected keys: %v", got)
		}
	})

	t.Run("set replaces nested", func(t *testing.T) {
		m := NewMap()
		nested := NewMap()
		nested.Set("x", "1")
		m.SetNested("dates", nested)
		m.Set("dates", "flat")
		if _, ok := m.Nested("dates"); ok {
			t.Fatalf("nested value must be replaced by scalar")
		}
		if got, _ := m.Get("dates"); got != "flat" {
			t.Fatalf("unexpected value: %q", got)
		}
		if m.Len() != 1 {
			t.Fatalf("key tracked twice")
		}
	})
}
