// Package main provides the entry point for the gitpro CLI.
package main

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// statusResult holds the data for status output.
type statusResult struct {
	Repo         string `json:"repo"`
	Branch       string `json:"branch,omitempty"`
	Detached     bool   `json:"detached"`
	Head         string `json:"head"`
	MainBranch   string `json:"main_branch"`
	CommitCount  int    `json:"commit_count"`
	LocalChanges bool   `json:"local_changes"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show repository state",
		Long: `Show where gitpro thinks you are: repository, current branch or
detached HEAD, commit count, configured main branch, and whether the working
tree has local changes.

Examples:
  gitpro status
  gitpro status --json`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())

	if !git.IsRepo() {
		sysErr := output.NewSystemError("not in a git repository")
		printer.Error(sysErr)
		return sysErr
	}

	result, err := gatherStatus(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(cmd *cobra.Command) (*statusResult, error) {
	root, err := git.RepoRoot()
	if err != nil {
		return nil, err
	}

	head, err := git.Head()
	if err != nil {
		return nil, err
	}

	branch, err := mainBranch(cmd)
	if err != nil {
		return nil, err
	}

	commits, err := git.History()
	if err != nil {
		return nil, err
	}

	detached, current := git.DetachedHead()

	return &statusResult{
		Repo:         filepath.Base(root),
		Branch:       current,
		Detached:     detached,
		Head:         head,
		MainBranch:   branch,
		CommitCount:  len(commits),
		LocalChanges: git.HasLocalChanges(),
	}, nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Repository")
	printer.KeyValue("Repo", status.Repo)
	if status.Detached {
		printer.KeyValue("Branch", "(detached HEAD)")
	} else {
		printer.KeyValue("Branch", status.Branch)
	}
	printer.KeyValue("HEAD", status.Head[:min(12, len(status.Head))])
	printer.KeyValue("Commits", strconv.Itoa(status.CommitCount))

	printer.Section("Gitpro")
	printer.KeyValue("Main branch", status.MainBranch)
	printer.KeyValue("Local changes", formatBool(status.LocalChanges))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
