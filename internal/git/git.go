// Package git provides Git operations via exec for the gitpro CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/gitpro/internal/output"
)

// Run executes a git command with the given arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo checks if the current directory is inside a git repository.
func IsRepo() bool {
	_, err := Run("rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the root directory of the current git repository.
// Returns an error if not in a git repository.
func RepoRoot() (string, error) {
	root, err := Run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}

// Head returns the full SHA of the current HEAD commit.
// Returns an error if not in a git repository or no commits exist.
func Head() (string, error) {
	sha, err := Run("rev-parse", "HEAD")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get HEAD", err)
	}
	return sha, nil
}

// DetachedHead reports whether HEAD is detached. When HEAD points to a
// branch, the branch name is returned with detached=false. A detached HEAD
// makes symbolic-ref fail, which is the signal, not an error.
func DetachedHead() (detached bool, branch string) {
	name, err := Run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return true, ""
	}
	return false, name
}

// HasLocalChanges returns true if the working tree has staged or unstaged changes.
func HasLocalChanges() bool {
	out, err := Run("status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

// Checkout checks out the given ref (branch name or commit SHA).
func Checkout(ref string) error {
	if _, err := Run("checkout", ref); err != nil {
		return output.NewSystemErrorWithCause("failed to checkout "+ref, err)
	}
	return nil
}

// ResetHard discards all staged and unstaged changes in the working tree.
func ResetHard() error {
	if _, err := Run("reset", "--hard"); err != nil {
		return output.NewSystemErrorWithCause("failed to reset working tree", err)
	}
	return nil
}
