package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/aggregate"
	"github.com/Drommedhar/novalist-sub000/internal/store"
)

func indexCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rebuild the entity index from the scope folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(save)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Persist the index and property values to the configured store")
	return cmd
}

func runIndex(save bool) error {
	cfg, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	idx := indexes.Current()
	fmt.Fprintf(os.Stdout, "Indexed %d entities.\n", idx.Len())
	for _, entry := range idx.Entries() {
		fmt.Fprintf(os.Stdout, "  %s (%s) %s\n", entry.Name, entry.Category, entry.Path)
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

	entries := make([]store.IndexEntry, 0, idx.Len())
	for _, entry := range idx.Entries() {
		entries = append(entries, store.IndexEntry{
			Name:     entry.Name,
			Path:     entry.Path,
			Category: string(entry.Category),
		})
	}
	if err := db.ReplaceEntries(ctx, entries); err != nil {
		return err
	}

	values := aggregate.Values(v, idx.Entries())
	if err := db.ReplacePropertyValues(ctx, values); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Saved to store.")
	return nil
}
