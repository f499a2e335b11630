package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoPatterns indicates Discover was called without any patterns.
var ErrNoPatterns = errors.New("catalog: no patterns provided")

// PatternError wraps a malformed glob pattern.
type PatternError struct {
	Pattern string
	Err     error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e PatternError) Unwrap() error { return e.Err }

// NoMatchError lists the patterns that matched nothing.
type NoMatchError struct {
	Patterns []string
}

func (e NoMatchError) Error() string {
	return "patterns matched no files: " + strings.Join(e.Patterns, ", ")
}

// Discover expands glob patterns against fsys. Matches of a single pattern
// are sorted; patterns keep their listed order so catalog files are merged
// in the order the config names them. A path matched twice is kept at its
// first position.
func Discover(fsys fs.FS, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	var (
		found   []string
		missing []string
		seen    = make(map[string]struct{})
	)
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, filepath.ToSlash(pattern))
		if err != nil {
			return nil, PatternError{Pattern: pattern, Err: err}
		}
		if len(matches) == 0 {
			missing = append(missing, pattern)
			continue
		}
		slices.Sort(matches)
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			found = append(found, match)
		}
	}
	if len(missing) > 0 {
		return nil, NoMatchError{Patterns: missing}
	}
	return found, nil
}
