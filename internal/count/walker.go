package count

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// FileCount associates a file path (relative to the walk root, slash
// separated) with its number of non-blank lines. Results keep traversal
// order: depth-first, a directory's files before its subdirectories.
type FileCount struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Walk traverses the tree rooted at root depth-first and returns the
// non-blank line count for every file whose name, and whose every ancestor
// directory name, fails to match all exclusion patterns. Directory entries
// are visited in name order, so output is deterministic for a given tree.
// Unreadable files are skipped; the walk never aborts because of one.
func Walk(root string, patterns []string, matcher Matcher) ([]FileCount, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	var counts []FileCount
	walkDir(root, "", patterns, matcher, &counts)
	return counts, nil
}

// walkDir processes one directory level: counts the surviving files first,
// then recurses into surviving subdirectories.
func walkDir(dir, rel string, patterns []string, matcher Matcher, counts *[]FileCount) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directory: skip it, keep going elsewhere.
		return
	}

	var subdirs []os.DirEntry
	for _, entry := range entries {
		if matchesAny(matcher, entry.Name(), patterns) {
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, readErr := os.ReadFile(path) // #nosec G304 -- path produced by the walk itself
		if readErr != nil {
			continue
		}
		*counts = append(*counts, FileCount{
			Path:  joinRel(rel, entry.Name()),
			Lines: CountLines(data),
		})
	}

	for _, sub := range subdirs {
		walkDir(filepath.Join(dir, sub.Name()), joinRel(rel, sub.Name()), patterns, matcher, counts)
	}
}

// CountLines returns the number of lines in data whose content is non-empty
// after stripping whitespace. Content that is not valid text is counted
// byte-wise; decoding problems never fail the count.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	count := 0
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) > 0 {
			count++
		}
	}
	return count
}

// joinRel joins relative path segments with forward slashes regardless of
// the host separator.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

// Total sums the per-file counts.
func Total(counts []FileCount) int {
	total := 0
	for _, fc := range counts {
		total += fc.Lines
	}
	return total
}

// depth returns the number of directory components in a relative path.
func depth(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, "/")
}
