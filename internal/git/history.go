// Package git provides Git operations via exec for the gitpro CLI.
package git

import (
	"strconv"
	"strings"
	"time"

	"github.com/gorewood/gitpro/internal/output"
)

// Commit represents a git commit with its metadata.
// Ordinal is the commit's 1-based position counting from the first (oldest)
// commit reachable from HEAD, so ordinal 1 is the root of the history.
type Commit struct {
	Ordinal int       // 1-based position from the oldest commit
	SHA     string    // Full 40-character SHA
	Short   string    // Abbreviated SHA (typically 7 chars)
	Subject string    // First line of commit message
	Author  string    // Author name
	Date    time.Time // Commit date
}

// commitSeparator is used to delimit commits in log output.
const commitSeparator = "---COMMIT-BOUNDARY---"

// fieldSeparator is used to delimit fields within a commit.
const fieldSeparator = "---FIELD---"

// History returns all commits reachable from HEAD, oldest first, with
// ordinals assigned in that order.
func History() ([]Commit, error) {
	format := strings.Join([]string{
		"%H",  // Full SHA
		"%h",  // Short SHA
		"%s",  // Subject
		"%an", // Author name
		"%at", // Unix timestamp
	}, fieldSeparator) + commitSeparator

	out, err := Run("log", "--reverse", "--pretty=format:"+format)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to get git log", err)
	}

	return parseCommits(out), nil
}

// CommitByOrdinal resolves the nth commit, 1-based from the oldest.
// Returns a user error when the ordinal is outside the history.
func CommitByOrdinal(n int) (Commit, error) {
	commits, err := History()
	if err != nil {
		return Commit{}, err
	}
	if n < 1 || n > len(commits) {
		return Commit{}, output.NewUserError("commit not found: no commit at position " + strconv.Itoa(n))
	}
	return commits[n-1], nil
}

// Search returns the commits whose subject contains term, compared
// case-insensitively. Ordinals are preserved from the full history.
func Search(term string) ([]Commit, error) {
	commits, err := History()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var matches []Commit
	for _, commit := range commits {
		if strings.Contains(strings.ToLower(commit.Subject), needle) {
			matches = append(matches, commit)
		}
	}
	return matches, nil
}

// parseCommits parses the custom formatted git log output into Commit structs.
func parseCommits(out string) []Commit {
	if out == "" {
		return nil
	}

	commitStrs := strings.Split(out, commitSeparator)
	var commits []Commit

	for _, commitStr := range commitStrs {
		commitStr = strings.TrimSpace(commitStr)
		if commitStr == "" {
			continue
		}

		commit, ok := parseCommitFields(commitStr)
		if ok {
			commit.Ordinal = len(commits) + 1
			commits = append(commits, commit)
		}
	}

	return commits
}

// parseCommitFields parses a single commit string into a Commit struct.
// Returns the commit and true if successful, zero value and false otherwise.
func parseCommitFields(commitStr string) (Commit, bool) {
	fields := strings.Split(commitStr, fieldSeparator)
	if len(fields) < 5 {
		return Commit{}, false
	}

	timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil {
		timestamp = 0
	}

	return Commit{
		SHA:     strings.TrimSpace(fields[0]),
		Short:   strings.TrimSpace(fields[1]),
		Subject: strings.TrimSpace(fields[2]),
		Author:  strings.TrimSpace(fields[3]),
		Date:    time.Unix(timestamp, 0),
	}, true
}

// Diff returns the patch between two commits along with the list of files
// that changed between them.
func Diff(from, to Commit) (changedFiles []string, patch string, err error) {
	names, err := Run("diff", "--name-only", from.SHA, to.SHA)
	if err != nil {
		return nil, "", output.NewSystemErrorWithCause("failed to diff commits", err)
	}
	if names != "" {
		changedFiles = strings.Split(names, "\n")
	}

	patch, err = Run("diff", from.SHA, to.SHA)
	if err != nil {
		return nil, "", output.NewSystemErrorWithCause("failed to diff commits", err)
	}

	return changedFiles, patch, nil
}
