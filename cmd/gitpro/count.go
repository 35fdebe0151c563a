// Package main provides the entry point for the gitpro CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/count"
	"github.com/gorewood/gitpro/internal/output"
)

// newCountCmd creates the count command.
func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [path]",
		Short: "Count non-blank lines of code per file",
		Long: `Walk the directory tree, count non-blank lines in every file, and
print the results as an indented tree with a grand total.

Names matching a glob in ` + count.IgnoreFileName + ` (one pattern per line,
'#' comments) are excluded; a matching directory is pruned with everything
below it. The .git directory and the ignore file itself are always
excluded. Counting is best-effort:
unreadable files are skipped and never abort the report.

Examples:
  gitpro count           # Count under the current directory
  gitpro count src       # Count under src/
  gitpro count --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCount,
	}
}

// runCount executes the count command.
func runCount(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	patterns, err := count.LoadPatterns(root)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load ignore patterns", err)
		printer.Error(sysErr)
		return sysErr
	}

	counts, err := count.Walk(root, patterns, count.GlobMatcher{})
	if err != nil {
		userErr := output.NewUserError("cannot count " + root + ": " + err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"files": counts,
			"total": count.Total(counts),
		})
	}

	if err := count.Render(cmd.OutOrStdout(), counts); err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to render counts", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
