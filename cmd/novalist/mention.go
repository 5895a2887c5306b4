package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func mentionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mention <file> <offset>",
		Short: "Resolve the entity named at a byte offset in a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("offset must be an integer: %w", err)
			}
			return runMention(args[0], offset)
		},
	}
	return cmd
}

func runMention(path string, offset int) error {
	_, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	text, err := v.Read(path)
	if err != nil {
		return err
	}

	entry, ok := indexes.Current().FindMentionAt(text, offset)
	if !ok {
		fmt.Fprintln(os.Stdout, "No entity at that position.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%s (%s) %s\n", entry.Name, entry.Category, entry.Path)
	return nil
}
