package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"code2md/internal/config"
	"code2md/internal/scanner"
)

// errFound short-circuits the classification walk on the first qualifying file.
var errFound = errors.New("qualifying file found")

// IsProject reports whether the directory at path contains, at any depth, at
// least one file with a registered code or project extension. Ignored
// directory names prune the descent. Filesystem errors during the walk are
// treated as "not a project" and never propagated.
func IsProject(cfg *config.Config, path string) bool {
	rules := scanner.NewRules(nil, cfg.IgnoreDirs)
	found := false
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != path && rules.IgnoreDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(d.Name())
		if cfg.IsCodeExtension(ext) || cfg.IsProjectExtension(ext) {
			found = true
			return errFound
		}
		return nil
	})
	return found
}

// Discover returns the project directories under the configured input root,
// in filesystem iteration order. Each top-level child either qualifies itself
// or is searched one level deeper, bounding nesting to two levels (a batch
// directory containing project subdirectories). A missing input root is the
// only hard failure.
func Discover(cfg *config.Config) ([]string, error) {
	root := cfg.CodeDir
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("code directory does not exist: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read code directory %s: %w", root, err)
	}

	var projects []string
	for _, entry := range entries {
		if !entry.IsDir() || cfg.IsIgnoredDir(entry.Name()) {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if IsProject(cfg, dir) {
			projects = append(projects, dir)
			continue
		}
		// One level deeper: a dated batch directory holding projects.
		children, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, child := range children {
			if !child.IsDir() || cfg.IsIgnoredDir(child.Name()) {
				continue
			}
			sub := filepath.Join(dir, child.Name())
			if IsProject(cfg, sub) {
				projects = append(projects, sub)
			}
		}
	}
	return projects, nil
}
