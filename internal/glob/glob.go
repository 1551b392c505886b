// Package glob implements the path pattern matching used by hook scopes.
package glob

import (
	"path/filepath"
	"strings"
)

// Match reports whether path matches pattern. Patterns follow filepath.Match
// syntax with ** added for recursive directory matching. A bare filename
// pattern such as *.py matches at any depth.
func Match(path, pattern string) bool {
	path = filepath.Clean(path)
	pattern = filepath.Clean(pattern)

	if strings.Contains(pattern, "**") {
		return matchRecursive(path, pattern)
	}

	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}

	// Allow bare filename patterns to match nested paths.
	ok, _ := filepath.Match(pattern, filepath.Base(path))
	return ok
}

// MatchAny reports whether path matches at least one pattern.
func MatchAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if Match(path, pattern) {
			return true
		}
	}
	return false
}

// matchRecursive handles patterns containing a single ** segment.
func matchRecursive(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) != 2 {
		return false
	}

	sep := string(filepath.Separator)
	prefix := strings.TrimSuffix(parts[0], sep)
	suffix := strings.TrimPrefix(parts[1], sep)

	if prefix != "" {
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), sep)
	}

	if suffix == "" {
		return true
	}

	// Try the suffix pattern against every tail of the remaining path.
	segments := strings.Split(path, sep)
	for i := range segments {
		tail := strings.Join(segments[i:], sep)
		if ok, _ := filepath.Match(suffix, tail); ok {
			return true
		}
	}

	ok, _ := filepath.Match(suffix, segments[len(segments)-1])
	return ok
}
