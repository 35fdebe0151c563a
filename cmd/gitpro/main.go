// Package main provides the entry point for the gitpro CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/gitpro/internal/config"
	"github.com/gorewood/gitpro/internal/git"
	"github.com/gorewood/gitpro/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run(os.Args[1:])
	os.Exit(code)
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(rewriteArgs(args))
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// rewriteArgs preserves the original invocation style where a bare integer
// argument means "check out the nth commit": `gitpro 3` becomes
// `gitpro checkout 3`.
func rewriteArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return args
	}
	if n < 0 {
		// Keep the flag parser from reading "-1" as a shorthand flag; the
		// checkout handler reports the ordinal error itself.
		return append([]string{"checkout", "--"}, args...)
	}
	return append([]string{"checkout"}, args...)
}

// newRootCmd creates the root command for the gitpro CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitpro",
		Short: "Shorthand commands for navigating git history",
		Long: `Gitpro - a convenience layer over git for navigating commit history.

Commits are addressed by ordinal position: #1 is the first (oldest) commit
reachable from HEAD. The same ordinals are used by checkout, list, diff and
search, so the number printed by one command works in the others.

A bare integer argument checks out that commit: 'gitpro 3' is shorthand for
'gitpro checkout 3'.

Query commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'gitpro --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().String("main-branch", "", "Main branch name (overrides config)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "history", Title: "History Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "tools", Title: "Tool Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newCheckoutCmd(), "history")
	addGroupedCommand(cmd, newResetCmd(), "history")
	addGroupedCommand(cmd, newListCmd(), "history")
	addGroupedCommand(cmd, newDiffCmd(), "history")
	addGroupedCommand(cmd, newSearchCmd(), "history")

	addGroupedCommand(cmd, newCountCmd(), "tools")
	addGroupedCommand(cmd, newStatusCmd(), "tools")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against TTY detection of the command's
// output writer.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ColorEnabled(mode, cmd.OutOrStdout())
}

// mainBranch resolves the effective main branch name: the --main-branch flag
// when set, otherwise the config files, otherwise the built-in default.
func mainBranch(cmd *cobra.Command) (string, error) {
	if flag := cmd.Root().PersistentFlags().Lookup("main-branch"); flag != nil && flag.Changed {
		return flag.Value.String(), nil
	}

	root, err := git.RepoRoot()
	if err != nil {
		root = ""
	}
	cfg, err := config.Load(root)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to load config", err)
	}
	return cfg.MainBranch, nil
}

// ensureOnBranch reports the current branch, or when HEAD is detached checks
// out the main branch first, announcing both.
func ensureOnBranch(printer *output.Printer, branch string) error {
	detached, current := git.DetachedHead()
	if !detached {
		printer.Notice("Currently on branch: %s", current)
		return nil
	}

	printer.Notice("Currently in detached HEAD state.")
	printer.Notice("Checking out %s first...", branch)
	return git.Checkout(branch)
}
