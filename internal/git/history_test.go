package git

import (
	"errors"
	"strings"
	"testing"

	"github.com/gorewood/gitpro/internal/output"
)

// threeCommitRepo creates a repo whose history is, oldest first:
// "first commit", "Add feature", "Fix the bug".
func threeCommitRepo(t *testing.T) string {
	t.Helper()
	dir := initTestRepo(t)
	commitFile(t, dir, "a.txt", "one\n", "first commit")
	commitFile(t, dir, "b.txt", "two\n", "Add feature")
	commitFile(t, dir, "c.txt", "three\n", "Fix the bug")
	return dir
}

func TestHistory_OldestFirstWithOrdinals(t *testing.T) {
	dir := threeCommitRepo(t)

	inDir(t, dir, func() {
		commits, err := History()
		if err != nil {
			t.Fatalf("History() error = %v", err)
		}
		if len(commits) != 3 {
			t.Fatalf("History() returned %d commits, want 3", len(commits))
		}

		wantSubjects := []string{"first commit", "Add feature", "Fix the bug"}
		for i, commit := range commits {
			if commit.Ordinal != i+1 {
				t.Errorf("commits[%d].Ordinal = %d, want %d", i, commit.Ordinal, i+1)
			}
			if commit.Subject != wantSubjects[i] {
				t.Errorf("commits[%d].Subject = %q, want %q", i, commit.Subject, wantSubjects[i])
			}
			if len(commit.SHA) != 40 {
				t.Errorf("commits[%d].SHA = %q, want 40-char SHA", i, commit.SHA)
			}
			if !strings.HasPrefix(commit.SHA, commit.Short) {
				t.Errorf("commits[%d].Short = %q is not a prefix of SHA %q", i, commit.Short, commit.SHA)
			}
			if commit.Author != "Test User" {
				t.Errorf("commits[%d].Author = %q, want %q", i, commit.Author, "Test User")
			}
			if commit.Date.IsZero() {
				t.Errorf("commits[%d].Date is zero", i)
			}
		}
	})
}

func TestCommitByOrdinal(t *testing.T) {
	dir := threeCommitRepo(t)

	inDir(t, dir, func() {
		commit, err := CommitByOrdinal(2)
		if err != nil {
			t.Fatalf("CommitByOrdinal(2) error = %v", err)
		}
		if commit.Subject != "Add feature" {
			t.Errorf("Subject = %q, want %q", commit.Subject, "Add feature")
		}

		for _, ordinal := range []int{0, -1, 4} {
			_, err := CommitByOrdinal(ordinal)
			if err == nil {
				t.Errorf("CommitByOrdinal(%d) expected error", ordinal)
				continue
			}
			var exitErr *output.ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != output.ExitUserError {
				t.Errorf("CommitByOrdinal(%d) error = %v, want user error", ordinal, err)
			}
		}
	})
}

func TestSearch(t *testing.T) {
	dir := threeCommitRepo(t)

	inDir(t, dir, func() {
		t.Run("case-insensitive match", func(t *testing.T) {
			matches, err := Search("FIX")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(matches) != 1 {
				t.Fatalf("Search(FIX) returned %d matches, want 1", len(matches))
			}
			if matches[0].Subject != "Fix the bug" || matches[0].Ordinal != 3 {
				t.Errorf("match = %+v, want ordinal 3 'Fix the bug'", matches[0])
			}
		})

		t.Run("no matches", func(t *testing.T) {
			matches, err := Search("nonexistent")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(matches) != 0 {
				t.Errorf("Search(nonexistent) returned %d matches, want 0", len(matches))
			}
		})

		t.Run("multiple matches keep ordinals", func(t *testing.T) {
			matches, err := Search("i")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			// "first commit" and "Fix the bug" both contain an 'i'.
			if len(matches) != 2 {
				t.Fatalf("Search(i) returned %d matches, want 2", len(matches))
			}
			if matches[0].Ordinal != 1 || matches[1].Ordinal != 3 {
				t.Errorf("ordinals = %d,%d, want 1,3", matches[0].Ordinal, matches[1].Ordinal)
			}
		})
	})
}

func TestDiff(t *testing.T) {
	dir := threeCommitRepo(t)

	inDir(t, dir, func() {
		from, err := CommitByOrdinal(1)
		if err != nil {
			t.Fatalf("CommitByOrdinal(1) error = %v", err)
		}
		to, err := CommitByOrdinal(3)
		if err != nil {
			t.Fatalf("CommitByOrdinal(3) error = %v", err)
		}

		changedFiles, patch, err := Diff(from, to)
		if err != nil {
			t.Fatalf("Diff() error = %v", err)
		}

		if len(changedFiles) != 2 {
			t.Errorf("changedFiles = %v, want b.txt and c.txt", changedFiles)
		}
		if !strings.Contains(patch, "b.txt") || !strings.Contains(patch, "c.txt") {
			t.Errorf("patch should mention both added files:\n%s", patch)
		}
	})
}

func TestParseCommits_Empty(t *testing.T) {
	if commits := parseCommits(""); commits != nil {
		t.Errorf("parseCommits(\"\") = %v, want nil", commits)
	}
}
