package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/sheet"
	"github.com/Drommedhar/novalist-sub000/internal/store"
)

func scanCmd() *cobra.Command {
	var chapter string
	var save bool
	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "List the entities appearing in a document's prose, by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], chapter, save)
		},
	}
	cmd.Flags().StringVar(&chapter, "chapter", "", "Chapter id to record the results under")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the presence results to the configured store")
	return cmd
}

func runScan(path, chapter string, save bool) error {
	if save && chapter == "" {
		return fmt.Errorf("--save requires --chapter")
	}

	cfg, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	text, err := v.Read(path)
	if err != nil {
		return err
	}

	presence := indexes.Current().ScanPresence(text)
	if len(presence) == 0 {
		fmt.Fprintln(os.Stdout, "No known entities found.")
	}
	for _, category := range sheet.Categories() {
		names := presence[category]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s:\n", category)
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "  %s\n", name)
		}
	}

	if !save {
		return nil
	}

	ctx := context.Background()
	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	var present []store.PresenceEntry
	for _, category := range sheet.Categories() {
		for _, name := range presence[category] {
			present = append(present, store.PresenceEntry{
				Chapter:  chapter,
				Category: string(category),
				Name:     name,
			})
		}
	}
	if err := db.ReplacePresence(ctx, chapter, present); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved presence for %s.\n", chapter)
	return nil
}
