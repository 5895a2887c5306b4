package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/aggregate"
)

func valuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values [key]",
		Short: "List observed values of a sheet field or custom property",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return runValues(key)
		},
	}
	return cmd
}

func runValues(key string) error {
	_, v, indexes, err := openProject()
	if err != nil {
		return err
	}

	values := aggregate.Values(v, indexes.Current().Entries())

	if key == "" {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(os.Stdout, "%s (%d)\n", k, len(values[k]))
		}
		return nil
	}

	list := values[key]
	if len(list) == 0 {
		fmt.Fprintf(os.Stdout, "No values recorded for %q.\n", key)
		return nil
	}
	for _, value := range list {
		fmt.Fprintln(os.Stdout, value)
	}
	return nil
}
