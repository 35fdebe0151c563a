// Package main provides the entry point for the gitpro CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// newResetCmd creates the reset command.
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard local changes and return to the main branch",
		Long: `Return to the main branch, discarding any staged or unstaged
changes in the working tree first.

The main branch defaults to 'master' and can be changed with the
--main-branch flag or a main_branch entry in ` + "`.gitpro.yaml`" + `.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}
}

// runReset executes the reset command.
func runReset(cmd *cobra.Command, _ []string) error {
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

	discarded := false
	if git.HasLocalChanges() {
		printer.Notice("Discarding local changes...")
		if err := git.ResetHard(); err != nil {
			printer.Error(err)
			return err
		}
		discarded = true
	}

	if err := git.Checkout(branch); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"branch":            branch,
			"changes_discarded": discarded,
		})
	}
	return printer.Success(map[string]any{"message": "Now on branch " + branch})
}
