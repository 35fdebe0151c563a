// Package main provides the entry point for the gitpro CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// newDiffCmd creates the diff command.
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <m> <n>",
		Short: "Show the changes between two commits by ordinal",
		Long: `Resolve the mth and nth commits (1-based from the first commit)
and show what changed between them: first the list of affected paths, then
the full diff.

Examples:
  gitpro diff 2 5      # What changed between the 2nd and 5th commits
  gitpro diff 2 5 --json`,
		Args: cobra.ExactArgs(2),
		RunE: runDiff,
	}
}

// runDiff executes the diff command.
func runDiff(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	m, errM := strconv.Atoi(args[0])
	n, errN := strconv.Atoi(args[1])
	if errM != nil || errN != nil {
		userErr := output.NewUserError("invalid arguments: expected two commit numbers")
		printer.Error(userErr)
		return userErr
	}

	if !git.IsRepo() {
		sysErr := output.NewSystemError("not in a git repository")
		printer.Error(sysErr)
		return sysErr
	}

	from, err := git.CommitByOrdinal(m)
	if err != nil {
		printer.Error(err)
		return err
	}
	to, err := git.CommitByOrdinal(n)
	if err != nil {
		printer.Error(err)
		return err
	}

	changedFiles, patch, err := git.Diff(from, to)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"from":          commitRecordFor(from),
			"to":            commitRecordFor(to),
			"changed_files": changedFiles,
			"patch":         patch,
		})
	}

	printer.Println("Changes in folder structure:")
	for _, file := range changedFiles {
		printer.Println(file)
	}
	printer.Println()
	printer.Print("Differences between the #%d and #%d commits:\n", from.Ordinal, to.Ordinal)
	printer.Println(patch)
	return nil
}

// commitRecordFor converts a single commit into its JSON representation.
func commitRecordFor(commit git.Commit) commitRecord {
	records := toCommitRecords([]git.Commit{commit})
	return records[0]
}
