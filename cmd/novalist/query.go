package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the persisted catalog from the CLI",
	}
	cmd.AddCommand(queryEntitiesCmd())
	cmd.AddCommand(queryPresenceCmd())
	cmd.AddCommand(queryValuesCmd())
	return cmd
}
