// Package sheet parses the structured entity section of a project document
// into a typed record: base fields, custom properties, relationships, images,
// free-form sections, and context-scoped overrides.
package sheet

// Category identifies which kind of entity a document describes.
type Category string

const (
	CategoryUnknown   Category = ""
	CategoryCharacter Category = "character"
	CategoryLocation  Category = "location"
	CategoryItem      Category = "item"
	CategoryLore      Category = "lore"
)

// Heading returns the document heading used for the category's sheet
// section, e.g. "CharacterSheet".
func (c Category) Heading() string {
	switch c {
	case CategoryCharacter:
		return "CharacterSheet"
	case CategoryLocation:
		return "LocationSheet"
	case CategoryItem:
		return "ItemSheet"
	case CategoryLore:
		return "LoreSheet"
	}
	return ""
}

// CategoryForHeading maps a sheet heading back to its category.
func CategoryForHeading(heading string) (Category, bool) {
	switch heading {
	case "CharacterSheet":
		return CategoryCharacter, true
	case "LocationSheet":
		return CategoryLocation, true
	case "ItemSheet":
		return CategoryItem, true
	case "LoreSheet":
		return CategoryLore, true
	}
	return CategoryUnknown, false
}

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{CategoryCharacter, CategoryLocation, CategoryItem, CategoryLore}
}

// Relationship links an entity to another entity by name.
type Relationship struct {
	Role   string
	Target string
}

// Image is a labelled image reference.
type Image struct {
	Label string
	Path  string
}

// Section is a free-form document section kept verbatim.
type Section struct {
	Title   string
	Content string
}

// Selector scopes an override to a place in the story. Scene implies
// Chapter; an act selector never also carries a chapter or scene.
type Selector struct {
	Chapter string
	Scene   string
	Act     string
}

// Override replaces parts of a sheet when its selector matches the
// narrative context. A non-empty image list replaces the base list
// wholesale.
type Override struct {
	Selector         Selector
	Fields           *Fields
	CustomProperties *Fields
	Images           []Image
}

// EntitySheet is the parsed form of one entity document. It is derived
// fresh from raw text on every read and never persisted.
type EntitySheet struct {
	Category         Category
	TemplateID       string
	Fields           *Fields
	CustomProperties *Fields
	Relationships    []Relationship
	Images           []Image
	Sections         []Section
	Overrides        []Override
}
