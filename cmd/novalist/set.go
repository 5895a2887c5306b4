package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/patch"
)

func setCmd() *cobra.Command {
	var front bool
	cmd := &cobra.Command{
		Use:   "set <name> <key> <value>",
		Short: "Update one base sheet field, preserving the document's bytes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2], front)
		},
	}
	cmd.Flags().BoolVar(&front, "frontmatter", false, "Update a frontmatter key instead of a sheet field (empty value deletes)")
	return cmd
}

func runSet(name, key, value string, front bool) error {
	_, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	entry, ok := indexes.Current().Lookup(name)
	if !ok {
		return fmt.Errorf("no entity found for %q", name)
	}

	raw, err := v.Read(entry.Path)
	if err != nil {
		return err
	}

	var updated string
	if front {
		updated = patch.SetFrontmatterFields(raw, map[string]any{key: value})
	} else {
		updated = patch.SetField(raw, entry.Category, key, value)
	}

	if updated == raw {
		fmt.Fprintln(os.Stdout, "No change.")
		return nil
	}
	if err := v.Write(entry.Path, updated); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Updated %s.\n", entry.Path)
	return nil
}
