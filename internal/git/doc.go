// Package git provides Git operations via exec for the gitpro CLI.
//
// This package wraps git commands by shelling out to the git executable,
// capturing stdout/stderr and translating failures to coded errors.
//
// # General Operations
//
// The package provides common git operations through simple function calls:
//
//	git.IsRepo()        // Check if current directory is a git repository
//	git.RepoRoot()      // Get the root directory of the repository
//	git.Head()          // Get the current HEAD commit SHA
//	git.DetachedHead()  // Detect detached HEAD, or report the branch name
//
// # Running Git Commands
//
// For custom git commands, use Run or RunContext:
//
//	output, err := git.Run("status", "--porcelain")
//	output, err := git.RunContext(ctx, "log", "--oneline", "-5")
//
// # History and Ordinals
//
// Commits are addressed by ordinal: 1-based position counting from the
// first (oldest) commit reachable from HEAD.
//
//	commits, err := git.History()        // All commits, oldest first
//	commit, err := git.CommitByOrdinal(3) // The third commit ever made
//	matches, err := git.Search("fix")     // Subject substring search
//
// # Error Handling
//
// All functions return errors wrapped with appropriate exit codes:
//   - ExitUserError (1) for user errors like an ordinal outside the history
//   - ExitSystemError (2) for system errors like git not found
//
// Example:
//
//	if !git.IsRepo() {
//	    return output.NewSystemError("not in a git repository")
//	}
//	commit, err := git.CommitByOrdinal(n)
//	if err != nil {
//	    return err // Error already wrapped with appropriate code
//	}
package git
