package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/frontmatter"
	"github.com/Drommedhar/novalist-sub000/internal/resolve"
	"github.com/Drommedhar/novalist-sub000/internal/sheet"
)

func showCmd() *cobra.Command {
	var chapter string
	var scene string
	var act string
	var date string
	var chapterFile string
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display an entity's effective attributes at a narrative context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], chapter, scene, act, date, chapterFile)
		},
	}
	cmd.Flags().StringVar(&chapter, "chapter", "", "Chapter id of the narrative context")
	cmd.Flags().StringVar(&scene, "scene", "", "Scene name of the narrative context")
	cmd.Flags().StringVar(&act, "act", "", "Act name of the narrative context")
	cmd.Flags().StringVar(&date, "date", "", "In-world date for date-based age")
	cmd.Flags().StringVar(&chapterFile, "chapter-file", "", "Chapter document whose frontmatter supplies the context date")
	return cmd
}

func runShow(name, chapter, scene, act, date, chapterFile string) error {
	cfg, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	entry, ok := indexes.Current().Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stdout, "No entity found for %q.\n", name)
		return nil
	}

	raw, err := v.Read(entry.Path)
	if err != nil {
		return err
	}
	parsed := sheet.Parse(raw)

	ctx := resolve.Context{Chapter: chapter, Scene: scene, Act: act}

	if date == "" && chapterFile != "" {
		chapterRaw, err := v.Read(chapterFile)
		if err != nil {
			return fmt.Errorf("reading chapter file: %w", err)
		}
		doc := frontmatter.Decode(chapterRaw)
		date = resolve.ContextDate(doc.Fields, ctx)
	}

	unit, _ := resolve.ParseUnit(cfg.Age.Unit)
	attrs := resolve.Resolve(parsed, ctx, resolve.Options{
		AgeFromDate: cfg.Age.FromDate,
		Unit:        unit,
		ContextDate: date,
	})

	fmt.Fprintf(os.Stdout, "Name: %s\n", entry.Name)
	fmt.Fprintf(os.Stdout, "Category: %s\n", entry.Category)
	fmt.Fprintf(os.Stdout, "Template: %s\n", parsed.TemplateID)
	fmt.Fprintf(os.Stdout, "Source: %s\n", entry.Path)

	if attrs.Fields.Len() > 0 {
		fmt.Fprintln(os.Stdout, "Fields:")
		for _, key := range attrs.Fields.Keys() {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", key, attrs.Fields.Value(key))
		}
	}
	if attrs.CustomProperties.Len() > 0 {
		fmt.Fprintln(os.Stdout, "Custom properties:")
		for _, key := range attrs.CustomProperties.Keys() {
			fmt.Fprintf(os.Stdout, "  %s: %s\n", key, attrs.CustomProperties.Value(key))
		}
	}
	if attrs.HasAgeInterval {
		fmt.Fprintf(os.Stdout, "Age (%s): %d\n", cfg.Age.Unit, attrs.AgeInterval)
	}
	if len(attrs.Images) > 0 {
		fmt.Fprintln(os.Stdout, "Images:")
		for _, img := range attrs.Images {
			if img.Label != "" {
				fmt.Fprintf(os.Stdout, "  %s: %s\n", img.Label, img.Path)
				continue
			}
			fmt.Fprintf(os.Stdout, "  %s\n", img.Path)
		}
	}
	if len(parsed.Relationships) > 0 {
		fmt.Fprintln(os.Stdout, "Relationships:")
		for _, rel := range parsed.Relationships {
			if rel.Role != "" {
				fmt.Fprintf(os.Stdout, "  %s: %s\n", rel.Role, rel.Target)
				continue
			}
			fmt.Fprintf(os.Stdout, "  %s\n", rel.Target)
		}
	}
	return nil
}
