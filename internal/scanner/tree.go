// Package scanner walks directory trees and renders them as indented text.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultMaxDepth bounds tree rendering recursion.
const DefaultMaxDepth = 10

const (
	truncatedMarker    = "[directory tree too deep, truncated]"
	inaccessibleMarker = "[directory inaccessible]"
)

// RenderTree returns one line per visible entry under root, using box-drawing
// connectors. Directories sort before files, both case-insensitively, and get
// a trailing slash. Ignored entries are omitted entirely. Subtrees deeper than
// maxDepth collapse into a single truncation marker; unreadable directories
// yield a single inaccessible marker instead of an error.
func RenderTree(root string, rules Rules, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return renderLevel(root, rules, maxDepth, 0)
}

type treeEntry struct {
	name  string
	isDir bool
}

func renderLevel(dir string, rules Rules, maxDepth, depth int) []string {
	if depth >= maxDepth {
		return []string{truncatedMarker}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{inaccessibleMarker}
	}

	visible := make([]treeEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			if !rules.IgnoreDir(e.Name()) {
				visible = append(visible, treeEntry{name: e.Name(), isDir: true})
			}
		} else if !rules.IgnoreFile(e.Name()) {
			visible = append(visible, treeEntry{name: e.Name(), isDir: false})
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].isDir != visible[j].isDir {
			return visible[i].isDir
		}
		return strings.ToLower(visible[i].name) < strings.ToLower(visible[j].name)
	})

	var lines []string
	for i, entry := range visible {
		last := i == len(visible)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		if !entry.isDir {
			lines = append(lines, connector+entry.name)
			continue
		}
		lines = append(lines, connector+entry.name+"/")
		childIndent := "│   "
		if last {
			childIndent = "    "
		}
		for _, child := range renderLevel(filepath.Join(dir, entry.name), rules, maxDepth, depth+1) {
			lines = append(lines, childIndent+child)
		}
	}
	return lines
}
