package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/config"
)

func queryEntitiesCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "entities",
		Short: "List the persisted entity index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryEntities(category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category to filter (character, location, item, lore)")
	return cmd
}

func runQueryEntities(category string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	entries, err := db.ListEntries(ctx, category)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No entities found.")
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(os.Stdout, "%s (%s) %s\n", entry.Name, entry.Category, entry.Path)
	}
	return nil
}
