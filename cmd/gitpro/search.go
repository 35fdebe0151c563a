// Package main provides the entry point for the gitpro CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search commit messages",
		Long: `Case-insensitive substring search over commit subjects. Matches are
printed with the same ordinals checkout and diff accept.

If HEAD is detached, the main branch is checked out first so the search
covers the full branch history.

Examples:
  gitpro search "fix"
  gitpro search refactor --json`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if !git.IsRepo() {
		sysErr := output.NewSystemError("not in a git repository")
		printer.Error(sysErr)
		return sysErr
	}

	branch, err := mainBranch(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := ensureOnBranch(printer, branch); err != nil {
		printer.Error(err)
		return err
	}

	matches, err := git.Search(args[0])
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(toCommitRecords(matches))
	}

	for _, commit := range matches {
		printer.Print("%d %s %q\n", commit.Ordinal, commit.Short, commit.Subject)
	}
	return nil
}
