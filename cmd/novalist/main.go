package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "novalist",
		Short: "Entity sheets, overrides, and mention lookup for fiction projects",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(indexCmd())
	root.AddCommand(showCmd())
	root.AddCommand(setCmd())
	root.AddCommand(mentionCmd())
	root.AddCommand(scanCmd())
	root.AddCommand(valuesCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(watchCmd())
	root.AddCommand(queryCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
