// Package main provides the entry point for the gitpro CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// newCheckoutCmd creates the checkout command.
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <n>",
		Short: "Check out the nth commit, counting from the first",
		Long: `Check out the nth commit, where #1 is the first (oldest) commit
reachable from HEAD.

If HEAD is detached, the main branch is checked out first so ordinals are
resolved against the full branch history.

Examples:
  gitpro checkout 3   # Check out the third commit ever made
  gitpro 3            # Same thing, original shorthand`,
		Args: cobra.ExactArgs(1),
		RunE: runCheckout,
	}
}

// runCheckout executes the checkout command.
func runCheckout(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	n, err := strconv.Atoi(args[0])
	if err != nil {
		userErr := output.NewUserError("invalid argument: expected a commit number, got " + args[0])
		printer.Error(userErr)
		return userErr
	}

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

	commit, err := git.CommitByOrdinal(n)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := git.Checkout(commit.SHA); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"ordinal": commit.Ordinal,
			"sha":     commit.SHA,
			"subject": commit.Subject,
		})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Checked out commit #%d (%s) %s", commit.Ordinal, commit.Short, commit.Subject),
	})
}
