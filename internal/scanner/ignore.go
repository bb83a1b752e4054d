package scanner

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Rules decides which directory entries are visible to the scan.
//
// File patterns are globs matched against the base name only; directory names
// match exactly. The zero value ignores nothing.
type Rules struct {
	filePatterns []string
	dirNames     map[string]struct{}
}

// NewRules builds ignore rules from file glob patterns and directory names.
func NewRules(filePatterns []string, dirNames map[string]struct{}) Rules {
	return Rules{filePatterns: filePatterns, dirNames: dirNames}
}

// IgnoreFile reports whether a file with the given base name is excluded from
// traversal, counting, and rendering.
func (r Rules) IgnoreFile(name string) bool {
	for _, pattern := range r.filePatterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// IgnoreDir reports whether a directory with the given base name is excluded,
// pruning its whole subtree.
func (r Rules) IgnoreDir(name string) bool {
	_, ok := r.dirNames[name]
	return ok
}
