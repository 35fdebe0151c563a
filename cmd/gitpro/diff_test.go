package main

import (
	"strings"
	"testing"

	"github.com/gorewood/gitpro/internal/output"
)

func TestDiffByOrdinals(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "diff", "1", "3")
		if err != nil {
			t.Fatalf("diff failed: %v\nOutput: %s", err, out)
		}

		if !strings.Contains(out, "Changes in folder structure:") {
			t.Errorf("output missing file-list header:\n%s", out)
		}
		if !strings.Contains(out, "b.txt") || !strings.Contains(out, "c.txt") {
			t.Errorf("output missing changed files:\n%s", out)
		}
		if !strings.Contains(out, "Differences between the #1 and #3 commits:") {
			t.Errorf("output missing diff header:\n%s", out)
		}
		if !strings.Contains(out, "diff --git") {
			t.Errorf("output missing patch body:\n%s", out)
		}
	})
}

func TestDiffJSON(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "diff", "2", "3", "--json")
		if err != nil {
			t.Fatalf("diff --json failed: %v\nOutput: %s", err, out)
		}

		result := parseJSONMap(t, out)
		files, ok := result["changed_files"].([]any)
		if !ok {
			t.Fatalf("changed_files = %v, want array", result["changed_files"])
		}
		if len(files) != 1 || files[0] != "c.txt" {
			t.Errorf("changed_files = %v, want [c.txt]", files)
		}
		if patch, ok := result["patch"].(string); !ok || !strings.Contains(patch, "c.txt") {
			t.Errorf("patch = %v, want patch mentioning c.txt", result["patch"])
		}
	})
}

func TestDiffUnknownOrdinal(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "diff", "1", "99")
		if err == nil {
			t.Fatal("diff 1 99 should fail")
		}
		if code := output.GetExitCode(err); code != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
		}
		if !strings.Contains(out, "commit not found") {
			t.Errorf("output = %q, want 'commit not found'", out)
		}
	})
}

func TestDiffNonIntegerArgs(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		_, err := execCommand(t, "diff", "one", "two")
		if err == nil {
			t.Fatal("diff one two should fail")
		}
		if code := output.GetExitCode(err); code != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
		}
	})
}
