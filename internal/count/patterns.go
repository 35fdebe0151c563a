// Package count implements the repository line counter: ignore-pattern
// loading, directory traversal with non-blank line counting, and the tree
// rendering of the results.
package count

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFileName is the per-directory ignore file consulted before counting.
// One glob pattern per line, '#' starts a comment, blank lines are skipped.
const IgnoreFileName = ".gitproignore"

// gitDirectoryName is always excluded so repository metadata never counts.
const gitDirectoryName = ".git"

// LoadPatterns reads the ignore file in dir and returns the exclusion
// patterns, always including the built-in exclusions for git metadata and
// for the ignore file itself. A missing ignore file is not an error.
// Patterns are trimmed of surrounding whitespace and of leading/trailing
// path separators, since matching is against bare names.
func LoadPatterns(dir string) ([]string, error) {
	patterns := []string{gitDirectoryName, IgnoreFileName}

	path := filepath.Join(dir, IgnoreFileName)
	file, err := os.Open(path) // #nosec G304 -- fixed filename under the target directory
	if err != nil {
		if os.IsNotExist(err) {
			return patterns, nil
		}
		return nil, fmt.Errorf("opening ignore file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pattern := trimSeparators(line)
		if pattern != "" {
			patterns = append(patterns, pattern)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}

	return patterns, nil
}

// trimSeparators strips leading and trailing path separators from a pattern.
// "build/" and "/build" both mean the bare name "build".
func trimSeparators(pattern string) string {
	return strings.Trim(pattern, "/\\")
}
