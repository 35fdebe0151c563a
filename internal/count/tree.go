package count

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// Render writes the counts as an indented tree followed by the grand total.
// Each directory prefix is printed once as a "name/" header; files sit one
// level deeper than their directory and are annotated with their line count.
// Rendering is a pure formatting pass over counts already in traversal order.
func Render(w io.Writer, counts []FileCount) error {
	printed := make(map[string]bool)

	for _, fc := range counts {
		dir, name := splitPath(fc.Path)
		if err := renderDirHeaders(w, dir, printed); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s: %d\n", strings.Repeat(indentUnit, depth(fc.Path)), name, fc.Lines); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total lines of code: %d\n", Total(counts))
	return err
}

// renderDirHeaders prints any not-yet-printed ancestors of dir, outermost
// first, each indented to its own depth.
func renderDirHeaders(w io.Writer, dir string, printed map[string]bool) error {
	if dir == "" || printed[dir] {
		return nil
	}

	parent, name := splitPath(dir)
	if err := renderDirHeaders(w, parent, printed); err != nil {
		return err
	}

	printed[dir] = true
	_, err := fmt.Fprintf(w, "%s%s/\n", strings.Repeat(indentUnit, depth(dir)), name)
	return err
}

// splitPath splits a slash-separated relative path into its directory prefix
// and final component. Paths without a slash have an empty prefix.
func splitPath(path string) (dir, name string) {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}
