package frontend

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// URLPrefix is the path the frontend directory is served under.
const URLPrefix = "/frontend/"

// Resolve returns the hrefs of the stylesheets under fsys that match any of
// patterns, sorted and without duplicates. Patterns use ** globbing and are
// relative to the frontend directory.
func Resolve(fsys fs.FS, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid stylesheet pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, Href(m))
		}
	}
	sort.Strings(out)
	return out, nil
}

// Href maps a path relative to the frontend directory to its URL.
func Href(rel string) string {
	return URLPrefix + path.Clean(rel)
}
