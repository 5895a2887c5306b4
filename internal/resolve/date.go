package resolve

import (
	"time"

	"github.com/Drommedhar/novalist-sub000/internal/frontmatter"
)

// Unit selects how a date-based age interval is expressed.
type Unit string

const (
	UnitYears  Unit = "years"
	UnitMonths Unit = "months"
	UnitDays   Unit = "days"
)

// ParseUnit validates a configured unit string, defaulting to years.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(s) {
	case UnitYears, UnitMonths, UnitDays:
		return Unit(s), true
	case "":
		return UnitYears, true
	}
	return UnitYears, false
}

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006/01/02",
}

// ParseDate accepts the date spellings used in project documents.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ContextDate looks up the in-world date for a narrative context in a
// chapter's frontmatter: the `dates` nested map keyed by scene name first,
// then the flat `date` field. Returns "" when neither is present.
func ContextDate(fields *frontmatter.Map, ctx Context) string {
	if fields == nil {
		return ""
	}
	if ctx.Scene != "" {
		if dates, ok := fields.Nested("dates"); ok {
			if value, ok := dates.Get(ctx.Scene); ok && value != "" {
				return value
			}
		}
	}
	if value, ok := fields.Get("date"); ok {
		return value
	}
	return ""
}

// elapsed computes the interval between two written dates in the given
// unit. Missing or unparsable dates yield ok=false, never an error.
func elapsed(from, to string, unit Unit) (int, bool) {
	start, ok := ParseDate(from)
	if !ok {
		return 0, false
	}
	end, ok := ParseDate(to)
	if !ok {
		return 0, false
	}

	switch unit {
	case UnitDays:
		return int(end.Sub(start).Hours() / 24), true
	case UnitMonths:
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if end.Day() < start.Day() {
			months--
		}
		return months, true
	default:
		years := end.Year() - start.Year()
		if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
			years--
		}
		return years, true
	}
}
