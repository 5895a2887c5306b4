package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/config"
)

func queryPresenceCmd() *cobra.Command {
	var chapter string
	var name string
	cmd := &cobra.Command{
		Use:   "presence",
		Short: "Show which entities appear in a chapter, or which chapters name an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryPresence(chapter, name)
		},
	}
	cmd.Flags().StringVar(&chapter, "chapter", "", "Chapter id to list entities for")
	cmd.Flags().StringVar(&name, "name", "", "Entity name to list chapters for")
	return cmd
}

func runQueryPresence(chapter, name string) error {
	if (chapter == "") == (name == "") {
		return fmt.Errorf("exactly one of --chapter or --name is required")
	}

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

	if chapter != "" {
		present, err := db.PresenceForChapter(ctx, chapter)
		if err != nil {
			return err
		}
		if len(present) == 0 {
			fmt.Fprintf(os.Stdout, "No presence recorded for %s.\n", chapter)
			return nil
		}
		for _, p := range present {
			fmt.Fprintf(os.Stdout, "%s (%s)\n", p.Name, p.Category)
		}
		return nil
	}

	chapters, err := db.ChaptersFor(ctx, name)
	if err != nil {
		return err
	}
	if len(chapters) == 0 {
		fmt.Fprintf(os.Stdout, "No chapters recorded for %q.\n", name)
		return nil
	}
	for _, c := range chapters {
		fmt.Fprintln(os.Stdout, c)
	}
	return nil
}
