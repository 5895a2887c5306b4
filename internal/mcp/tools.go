package mcp

import (
	"context"
	"fmt"
	"sort"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Drommedhar/novalist-sub000/internal/aggregate"
	"github.com/Drommedhar/novalist-sub000/internal/resolve"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

type GetEntityInput struct {
	Name        string `json:"name" jsonschema:"entity name"`
	Chapter     string `json:"chapter,omitempty" jsonschema:"narrative context chapter id"`
	Scene       string `json:"scene,omitempty" jsonschema:"narrative context scene name"`
	Act         string `json:"act,omitempty" jsonschema:"narrative context act name"`
	ContextDate string `json:"context_date,omitempty" jsonschema:"in-world date for date-based age"`
}

type FindMentionInput struct {
	Text   string `json:"text" jsonschema:"line of prose"`
	Offset int    `json:"offset" jsonschema:"byte offset inside text"`
}

type ScanPresenceInput struct {
	Text string `json:"text" jsonschema:"prose to scan"`
}

type ListEntitiesInput struct {
	Category string `json:"category,omitempty" jsonschema:"character, location, item, or lore"`
}

type PropertyValuesInput struct {
	Key string `json:"key,omitempty" jsonschema:"field or custom property name; empty lists the keys"`
}

type EntityOutput struct {
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Path             string            `json:"path"`
	Template         string            `json:"template"`
	Fields           map[string]string `json:"fields"`
	CustomProperties map[string]string `json:"custom_properties"`
	Images           []ImageOutput     `json:"images,omitempty"`
	Relationships    []RelationOutput  `json:"relationships,omitempty"`
	AgeInterval      *int              `json:"age_interval,omitempty"`
}

type ImageOutput struct {
	Label string `json:"label,omitempty"`
	Path  string `json:"path"`
}

type RelationOutput struct {
	Role   string `json:"role,omitempty"`
	Target string `json:"target"`
}

type MentionOutput struct {
	Found    bool   `json:"found"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Path     string `json:"path,omitempty"`
}

type PresenceOutput struct {
	Characters []string `json:"characters,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	Items      []string `json:"items,omitempty"`
	Lore       []string `json:"lore,omitempty"`
}

type EntitySummaryOutput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

type ListEntitiesOutput struct {
	Entities []EntitySummaryOutput `json:"entities"`
}

type PropertyValuesOutput struct {
	Keys   []string `json:"keys,omitempty"`
	Values []string `json:"values,omitempty"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_entity",
		Description: "Retrieve an entity's effective attributes at a narrative context",
	}, s.handleGetEntity)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "find_mention",
		Description: "Resolve the entity named at a text offset",
	}, s.handleFindMention)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "scan_presence",
		Description: "List the entities appearing in a passage, by category",
	}, s.handleScanPresence)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_entities",
		Description: "List indexed entities with an optional category filter",
	}, s.handleListEntities)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "property_values",
		Description: "List observed values of a sheet field or custom property",
	}, s.handlePropertyValues)
}

func (s *Server) handleGetEntity(ctx context.Context, req *sdk.CallToolRequest, input GetEntityInput) (*sdk.CallToolResult, EntityOutput, error) {
	if input.Name == "" {
		return nil, EntityOutput{}, fmt.Errorf("name is required")
	}
	entry, ok := s.indexes.Current().Lookup(input.Name)
	if !ok {
		return nil, EntityOutput{}, fmt.Errorf("entity not found: %s", input.Name)
	}

	raw, err := s.reader.Read(entry.Path)
	if err != nil {
		return nil, EntityOutput{}, fmt.Errorf("reading %s: %w", entry.Path, err)
	}

	parsed := sheet.Parse(raw)
	unit, _ := resolve.ParseUnit(s.cfg.Age.Unit)
	attrs := resolve.Resolve(parsed, resolve.Context{
		Chapter: input.Chapter,
		Scene:   input.Scene,
		Act:     input.Act,
	}, resolve.Options{
		AgeFromDate: s.cfg.Age.FromDate,
		Unit:        unit,
		ContextDate: input.ContextDate,
	})

	out := EntityOutput{
		Name:             entry.Name,
		Category:         string(entry.Category),
		Path:             entry.Path,
		Template:         parsed.TemplateID,
		Fields:           fieldsToMap(attrs.Fields),
		CustomProperties: fieldsToMap(attrs.CustomProperties),
	}
	for _, img := range attrs.Images {
		out.Images = append(out.Images, ImageOutput{Label: img.Label, Path: img.Path})
	}
	for _, rel := range parsed.Relationships {
		out.Relationships = append(out.Relationships, RelationOutput{Role: rel.Role, Target: rel.Target})
	}
	if attrs.HasAgeInterval {
		age := attrs.AgeInterval
		out.AgeInterval = &age
	}
	return nil, out, nil
}

func (s *Server) handleFindMention(ctx context.Context, req *sdk.CallToolRequest, input FindMentionInput) (*sdk.CallToolResult, MentionOutput, error) {
	entry, ok := s.indexes.Current().FindMentionAt(input.Text, input.Offset)
	if !ok {
		return nil, MentionOutput{}, nil
	}
	return nil, MentionOutput{
		Found:    true,
		Name:     entry.Name,
		Category: string(entry.Category),
		Path:     entry.Path,
	}, nil
}

func (s *Server) handleScanPresence(ctx context.Context, req *sdk.CallToolRequest, input ScanPresenceInput) (*sdk.CallToolResult, PresenceOutput, error) {
	presence := s.indexes.Current().ScanPresence(input.Text)
	return nil, PresenceOutput{
		Characters: presence[sheet.CategoryCharacter],
		Locations:  presence[sheet.CategoryLocation],
		Items:      presence[sheet.CategoryItem],
		Lore:       presence[sheet.CategoryLore],
	}, nil
}

func (s *Server) handleListEntities(ctx context.Context, req *sdk.CallToolRequest, input ListEntitiesInput) (*sdk.CallToolResult, ListEntitiesOutput, error) {
	var out ListEntitiesOutput
	for _, entry := range s.indexes.Current().Entries() {
		if input.Category != "" && string(entry.Category) != input.Category {
			continue
		}
		out.Entities = append(out.Entities, EntitySummaryOutput{
			Name:     entry.Name,
			Category: string(entry.Category),
			Path:     entry.Path,
		})
	}
	return nil, out, nil
}

func (s *Server) handlePropertyValues(ctx context.Context, req *sdk.CallToolRequest, input PropertyValuesInput) (*sdk.CallToolResult, PropertyValuesOutput, error) {
	values := aggregate.Values(s.reader, s.indexes.Current().Entries())
	if input.Key == "" {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return nil, PropertyValuesOutput{Keys: keys}, nil
	}
	return nil, PropertyValuesOutput{Values: values[input.Key]}, nil
}

func fieldsToMap(fields *sheet.Fields) map[string]string {
	out := make(map[string]string, fields.Len())
	for _, key := range fields.Keys() {
		out[key] = fields.Value(key)
	}
	return out
}
