package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusJSON(t *testing.T) {
	dir := historyRepo(t)
	head := runGitOutput(t, dir, "rev-parse", "HEAD")

	runInDir(t, dir, func() {
		out, err := execCommand(t, "status", "--json")
		if err != nil {
			t.Fatalf("status failed: %v\nOutput: %s", err, out)
		}

		result := parseJSONMap(t, out)
		wantFields := map[string]any{
			"repo":          filepath.Base(dir),
			"branch":        "master",
			"detached":      false,
			"head":          head,
			"main_branch":   "master",
			"commit_count":  float64(3),
			"local_changes": false,
		}
		for key, want := range wantFields {
			got, ok := result[key]
			if !ok {
				t.Errorf("missing field %q in output", key)
				continue
			}
			if got != want {
				t.Errorf("field %q = %v, want %v", key, got, want)
			}
		}
	})
}

func TestStatusDetached(t *testing.T) {
	dir := historyRepo(t)
	shas := historySHAs(t, dir)
	runGit(t, dir, "checkout", shas[0])

	runInDir(t, dir, func() {
		out, err := execCommand(t, "status", "--json")
		if err != nil {
			t.Fatalf("status failed: %v\nOutput: %s", err, out)
		}

		result := parseJSONMap(t, out)
		if result["detached"] != true {
			t.Errorf("detached = %v, want true", result["detached"])
		}
		// Detached at the first commit, only one commit is reachable.
		if count, ok := result["commit_count"].(float64); !ok || int(count) != 1 {
			t.Errorf("commit_count = %v, want 1", result["commit_count"])
		}
	})
}

func TestStatusHumanOutput(t *testing.T) {
	dir := historyRepo(t)

	runInDir(t, dir, func() {
		out, err := execCommand(t, "status")
		if err != nil {
			t.Fatalf("status failed: %v\nOutput: %s", err, out)
		}

		checks := []string{
			filepath.Base(dir), // repo name
			"Branch",
			"HEAD",
			"Main branch",
			"Local changes",
		}
		for _, check := range checks {
			if !strings.Contains(out, check) {
				t.Errorf("human output missing %q\nOutput: %s", check, out)
			}
		}
	})
}

func TestStatusNotARepo(t *testing.T) {
	t.Setenv("GITPRO_CONFIG_HOME", t.TempDir())

	runInDir(t, t.TempDir(), func() {
		out, err := execCommand(t, "status", "--json")
		if err == nil {
			t.Fatal("expected error for non-repo directory")
		}

		result := parseJSONMap(t, out)
		if code, ok := result["code"].(float64); !ok || int(code) != 2 {
			t.Errorf("code = %v, want 2 (system error)", result["code"])
		}
	})
}
