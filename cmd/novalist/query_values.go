package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/config"
)

func queryValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values [key]",
		Short: "List persisted property values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return runQueryValues(key)
		},
	}
	return cmd
}

func runQueryValues(key string) error {
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

	if key == "" {
		keys, err := db.PropertyKeys(ctx)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Fprintln(os.Stdout, "No property values recorded.")
			return nil
		}
		for _, k := range keys {
			fmt.Fprintln(os.Stdout, k)
		}
		return nil
	}

	values, err := db.PropertyValues(ctx, key)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		fmt.Fprintf(os.Stdout, "No values recorded for %q.\n", key)
		return nil
	}
	for _, value := range values {
		fmt.Fprintln(os.Stdout, value)
	}
	return nil
}
