package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drommedhar/novalist-sub000/internal/check"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run consistency checks across the project documents",
		RunE:  runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, v, _, err := openProject()
	if err != nil {
		return err
	}

	files, err := v.List()
	if err != nil {
		return err
	}
	scopes := v.Scopes(cfg.Scopes.Characters, cfg.Scopes.Locations, cfg.Scopes.Items, cfg.Scopes.Lore)

	report := check.Run(v, files, scopes, check.Options{AgeFromDate: cfg.Age.FromDate})

	var errorIssues []check.Issue
	var warnIssues []check.Issue
	for _, issue := range report.Issues {
		switch issue.Severity {
		case check.SeverityError:
			errorIssues = append(errorIssues, issue)
		case check.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("check found errors")
	}
	return nil
}

func printIssues(out *os.File, issues []check.Issue) {
	for _, issue := range issues {
		location := issue.Name
		if issue.FilePath != "" {
			location = fmt.Sprintf("%s (%s)", location, issue.FilePath)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
