// Package render assembles the Markdown documents emitted for each project
// and the cross-project index.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code2md/internal/config"
	"code2md/internal/project"
	"code2md/internal/reader"
	"code2md/internal/scanner"
)

const timeLayout = "2006-01-02 15:04:05"

// ContentFunc loads embeddable text for a file path. The orchestrator injects
// the size-capped multi-encoding reader here; tests can inject anything.
type ContentFunc func(path string) string

// DocumentRenderer writes one Markdown document per project. Sections other
// than the title and the info block are toggled by configuration.
type DocumentRenderer struct {
	cfg  *config.Config
	read ContentFunc
}

// NewDocument creates a renderer bound to a configuration and content loader.
func NewDocument(cfg *config.Config, read ContentFunc) *DocumentRenderer {
	return &DocumentRenderer{cfg: cfg, read: read}
}

// Render writes the complete document for one analyzed project.
func (r *DocumentRenderer) Render(w io.Writer, info *project.Info) {
	fmt.Fprintf(w, "# %s\n\n", info.Name)

	fmt.Fprintln(w, "## Project Info")
	fmt.Fprintf(w, "- **Name**: %s\n", info.Name)
	fmt.Fprintf(w, "- **Generated**: %s\n", info.GeneratedAt.Format(timeLayout))
	fmt.Fprintf(w, "- **Source Path**: `%s`\n", info.SourcePath)
	fmt.Fprintln(w)

	if r.cfg.IncludeStructure {
		r.renderStructure(w, info)
	}
	if r.cfg.IncludeStats {
		renderStats(w, info.Stats)
	}
	if r.cfg.IncludeContent {
		r.renderFileSections(w, info)
	}
}

func (r *DocumentRenderer) renderStructure(w io.Writer, info *project.Info) {
	fmt.Fprintln(w, "## Project Structure")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```")
	fmt.Fprintf(w, "%s/\n", info.Name)
	rules := scanner.NewRules(r.cfg.IgnoreFiles, r.cfg.IgnoreDirs)
	for _, line := range scanner.RenderTree(info.SourcePath, rules, scanner.DefaultMaxDepth) {
		if strings.TrimSpace(line) != "" {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w)
}

func renderStats(w io.Writer, stats project.FileStats) {
	fmt.Fprintln(w, "## File Statistics")
	fmt.Fprintf(w, "- Code files: %d\n", stats.CodeFiles)
	fmt.Fprintf(w, "- Header files: %d\n", stats.HeaderFiles)
	fmt.Fprintf(w, "- Project files: %d\n", stats.ProjectFiles)
	fmt.Fprintf(w, "- Other files: %d\n", stats.OtherFiles)
	fmt.Fprintln(w)
}

func (r *DocumentRenderer) renderFileSections(w io.Writer, info *project.Info) {
	for _, path := range project.CodeFiles(r.cfg, info.SourcePath) {
		r.renderFileSection(w, path, info.SourcePath)
	}
}

func (r *DocumentRenderer) renderFileSection(w io.Writer, path, projectRoot string) {
	rel, err := filepath.Rel(projectRoot, path)
	if err != nil {
		rel = path
	}
	lang := LanguageForExtension(filepath.Ext(path))

	var size int64
	modified := "unknown"
	if fi, err := os.Stat(path); err == nil {
		size = fi.Size()
		modified = fi.ModTime().Format(timeLayout)
	}

	fmt.Fprintf(w, "## %s\n\n", filepath.Base(path))
	fmt.Fprintf(w, "**Path**: `%s`  \n", filepath.ToSlash(rel))
	fmt.Fprintf(w, "**Language**: %s  \n", strings.ToUpper(lang))
	fmt.Fprintf(w, "**Size**: %s  \n", reader.FormatSize(size))
	fmt.Fprintf(w, "**Modified**: %s  \n", modified)
	fmt.Fprintln(w)

	content := r.read(path)
	if content == "" {
		return
	}
	fmt.Fprintln(w, "### Content")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "```%s\n", lang)
	fmt.Fprintln(w, content)
	fmt.Fprintln(w, "```")
	fmt.Fprintln(w)
}
