package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new novalist project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	contents := fmt.Sprintf(`project: %s
version: 1
root: .

scopes:
  characters:
    - Characters
  locations:
    - Locations
  items:
    - Items
  lore:
    - Lore

exclude:
  - Scratch

age:
  from_date: false
  unit: years

# store:
#   driver: sqlite
#   dsn: sqlite://novalist.db
`, projectName)
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	for _, folder := range []string{"Characters", "Locations", "Items", "Lore"} {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", folder, err)
		}
	}
	return nil
}
