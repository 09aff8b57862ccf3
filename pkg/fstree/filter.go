package fstree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"
)

// Filter decides which directory entries are surfaced in listings.
// A nil *Filter shows everything.
type Filter struct {
	showHidden bool
	matcher    *patternmatcher.PatternMatcher
}

// NewFilter builds a filter from .dockerignore-style patterns. Patterns are
// matched against entry names; a leading "!" re-includes a name.
func NewFilter(showHidden bool, patterns []string) (*Filter, error) {
	f := &Filter{showHidden: showHidden}
	if len(patterns) == 0 {
		return f, nil
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern: %w", err)
	}
	f.matcher = pm
	return f, nil
}

// Allows reports whether an entry with the given name should be listed.
func (f *Filter) Allows(name string) bool {
	if f == nil {
		return true
	}
	if !f.showHidden && isHidden(name) {
		return false
	}
	if f.matcher == nil {
		return true
	}
	ignored, err := f.matcher.MatchesOrParentMatches(filepath.ToSlash(name))
	if err != nil {
		return true
	}
	return !ignored
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
