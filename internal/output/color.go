package output

import (
	"io"
	"os"
)

// ColorEnabled reports whether human output to w should be styled, given the
// --color flag value:
//   - "never":  colors off
//   - "always": colors on
//   - "auto":   colors only when w is a terminal (default)
func ColorEnabled(colorMode string, w io.Writer) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTerminal(w)
	}
}

// isTerminal reports whether the writer is a character device. Only an
// *os.File can be one; buffers and pipes never are.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
