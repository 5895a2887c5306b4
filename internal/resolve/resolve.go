// Package resolve computes the attributes of an entity as they apply at a
// specific place in the story, by cascading the sheet's context overrides
// over its base fields.
package resolve

import (
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

// Context identifies where in the story a read or edit is focused. It is
// supplied by the caller, never derived here.
type Context struct {
	Chapter string
	Scene   string
	Act     string
}

// Options tune attribute derivation.
type Options struct {
	// AgeFromDate treats the effective Age field as a birth date and
	// derives the elapsed interval to ContextDate.
	AgeFromDate bool
	Unit        Unit
	// ContextDate is the in-world date of the narrative context, already
	// resolved by the caller (see ContextDate).
	ContextDate string
}

// Attributes are the effective values of a sheet at one narrative context.
type Attributes struct {
	Fields           *sheet.Fields
	CustomProperties *sheet.Fields
	Images           []sheet.Image

	// AgeInterval is the derived date-based age. HasAgeInterval is false
	// when either date is missing or unparsable.
	AgeInterval    int
	HasAgeInterval bool
}

// Resolve applies the most specific matching override to the sheet's base
// values. Match order: chapter+scene exact, then chapter-only, then
// act-only; within one tier the first override in document order wins. With
// no match the base values are returned verbatim.
func Resolve(s *sheet.EntitySheet, ctx Context, opts Options) Attributes {
	attrs := Attributes{
		Fields:           s.Fields.Clone(),
		CustomProperties: s.CustomProperties.Clone(),
		Images:           append([]sheet.Image(nil), s.Images...),
	}

	if o := matchOverride(s.Overrides, ctx); o != nil {
		for _, key := range o.Fields.Keys() {
			attrs.Fields.Set(key, o.Fields.Value(key))
		}
		for _, key := range o.CustomProperties.Keys() {
			attrs.CustomProperties.Set(key, o.CustomProperties.Value(key))
		}
		if len(o.Images) > 0 {
			attrs.Images = append([]sheet.Image(nil), o.Images...)
		}
	}

	if opts.AgeFromDate {
		if age, ok := elapsed(attrs.Fields.Value("Age"), opts.ContextDate, opts.Unit); ok {
			attrs.AgeInterval = age
			attrs.HasAgeInterval = true
		}
	}

	return attrs
}

func matchOverride(overrides []sheet.Override, ctx Context) *sheet.Override {
	if ctx.Scene != "" {
		for i := range overrides {
			sel := overrides[i].Selector
			if sel.Chapter == ctx.Chapter && sel.Scene == ctx.Scene && sel.Act == "" {
				return &overrides[i]
			}
		}
	}
	for i := range overrides {
		sel := overrides[i].Selector
		if sel.Chapter == ctx.Chapter && sel.Chapter != "" && sel.Scene == "" && sel.Act == "" {
			return &overrides[i]
		}
	}
	if ctx.Act != "" {
		for i := range overrides {
			sel := overrides[i].Selector
			if sel.Act == ctx.Act && sel.Chapter == "" && sel.Scene == "" {
				return &overrides[i]
			}
		}
	}
	return nil
}
