// Package main provides the entry point for the gitpro CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// commitRecord is the JSON shape for a single commit.
type commitRecord struct {
	Ordinal int    `json:"ordinal"`
	SHA     string `json:"sha"`
	Short   string `json:"short"`
	Subject string `json:"subject"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all commits with their ordinals",
		Long: `List every commit reachable from HEAD as '<n>. <hash> <subject>',
oldest first, so the printed ordinal is the one checkout and diff accept.

Examples:
  gitpro list          # Human-readable listing
  gitpro list --json   # Structured records for scripting`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if !git.IsRepo() {
		sysErr := output.NewSystemError("not in a git repository")
		printer.Error(sysErr)
		return sysErr
	}

	commits, err := git.History()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(toCommitRecords(commits))
	}

	for _, commit := range commits {
		printer.Print("%d. %s %s\n", commit.Ordinal, commit.SHA, commit.Subject)
	}
	return nil
}

// toCommitRecords converts commits into their JSON representation.
func toCommitRecords(commits []git.Commit) []commitRecord {
	records := make([]commitRecord, 0, len(commits))
	for _, commit := range commits {
		records = append(records, commitRecord{
			Ordinal: commit.Ordinal,
			SHA:     commit.SHA,
			Short:   commit.Short,
			Subject: commit.Subject,
			Author:  commit.Author,
			Date:    commit.Date.UTC().Format(time.RFC3339),
		})
	}
	return records
}
