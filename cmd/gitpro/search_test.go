package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSearchFindsMatches(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "search", "FEATURE")
		if err != nil {
			t.Fatalf("search failed: %v\nOutput: %s", err, out)
		}

		short := runGitOutput(t, dir, "rev-parse", "--short", "HEAD~1")
		want := fmt.Sprintf("2 %s %q", short, "Add feature")
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want line %q", out, want)
		}
	})
}

func TestSearchNoMatches(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "search", "nonexistent-term")
		if err != nil {
			t.Fatalf("search failed: %v\nOutput: %s", err, out)
		}

		// Only the branch notice should be printed, no match lines.
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			if strings.Contains(line, "\"") {
				t.Errorf("unexpected match line: %q", line)
			}
		}
	})
}

func TestSearchFromDetachedHead(t *testing.T) {
	dir := historyRepo(t)
	shas := historySHAs(t, dir)
	runGit(t, dir, "checkout", shas[0])

	runInDir(t, dir, func() {
		out, err := execCommand(t, "search", "bug")
		if err != nil {
			t.Fatalf("search failed: %v\nOutput: %s", err, out)
		}

		if !strings.Contains(out, "detached HEAD") {
			t.Errorf("output = %q, want detached HEAD notice", out)
		}
		// Back on master, the third commit is searchable again.
		if !strings.Contains(out, "Fix the bug") {
			t.Errorf("output = %q, want match for 'Fix the bug'", out)
		}

		branch := runGitOutput(t, dir, "rev-parse", "--abbrev-ref", "HEAD")
		if branch != "master" {
			t.Errorf("branch = %q, want master after detached search", branch)
		}
	})
}

func TestSearchJSON(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "search", "commit", "--json")
		if err != nil {
			t.Fatalf("search --json failed: %v\nOutput: %s", err, out)
		}

		var records []map[string]any
		if err := json.Unmarshal([]byte(out), &records); err != nil {
			t.Fatalf("failed to parse JSON output: %v\nOutput: %s", err, out)
		}

		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if records[0]["subject"] != "first commit" {
			t.Errorf("subject = %v, want 'first commit'", records[0]["subject"])
		}
		if ordinal, ok := records[0]["ordinal"].(float64); !ok || int(ordinal) != 1 {
			t.Errorf("ordinal = %v, want 1", records[0]["ordinal"])
		}
	})
}
