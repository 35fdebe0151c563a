package count

import "github.com/bmatcuk/doublestar/v4"

// Matcher decides whether a bare file or directory name matches an exclusion
// pattern. It exists so the matching strategy can be swapped (for example to
// path-rooted patterns) without touching the traversal.
type Matcher interface {
	Matches(name, pattern string) bool
}

// GlobMatcher matches names against shell-glob patterns.
type GlobMatcher struct{}

// Matches reports whether name matches the glob pattern.
// Malformed patterns never match.
func (GlobMatcher) Matches(name, pattern string) bool {
	matched, err := doublestar.Match(pattern, name)
	return err == nil && matched
}

// matchesAny reports whether name matches any of the patterns.
func matchesAny(m Matcher, name string, patterns []string) bool {
	for _, pattern := range patterns {
		if m.Matches(name, pattern) {
			return true
		}
	}
	return false
}
