package project

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"code2md/internal/config"
)

// dateSuffix matches a trailing underscore plus an 8-digit date stamp,
// e.g. "SC92F7003_20230615".
var dateSuffix = regexp.MustCompile(`_\d{8}$`)

// ExtractName derives a project's display name from its path. Components are
// examined from the leaf backward; dot-prefixed components and components
// equal to the input or output root base names are skipped. The deepest
// remaining component wins. When nothing remains the path's own leaf name is
// used.
func ExtractName(cfg *config.Config, path string) string {
	rootNames := map[string]struct{}{
		filepath.Base(cfg.CodeDir):     {},
		filepath.Base(cfg.MarkdownDir): {},
	}

	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	var meaningful []string
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		if part == "" || part == "." {
			continue
		}
		if _, isRoot := rootNames[part]; !strings.HasPrefix(part, ".") && !isRoot {
			meaningful = append(meaningful, part)
		}
		if len(meaningful) >= 2 {
			break
		}
	}
	if len(meaningful) > 0 {
		return meaningful[0]
	}
	return filepath.Base(path)
}

// NormalizeName strips a trailing date-stamp suffix ("_" + 8 digits) from a
// project name. Names without the suffix are returned unchanged.
func NormalizeName(name string) string {
	return dateSuffix.ReplaceAllString(name, "")
}

func sortByBaseName(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})
}
