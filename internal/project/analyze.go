package project

import (
	"io/fs"
	"path/filepath"
	"time"

	"code2md/internal/config"
	"code2md/internal/scanner"
)

// Analyze visits every retained file under projectPath and produces the
// project's Info. Files matching an ignore pattern are excluded from both the
// counts and the size total. Traversal errors are swallowed; the affected
// subtree simply contributes nothing.
func Analyze(cfg *config.Config, projectPath string) *Info {
	rules := scanner.NewRules(cfg.IgnoreFiles, cfg.IgnoreDirs)
	var stats FileStats

	_ = filepath.WalkDir(projectPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != projectPath && rules.IgnoreDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if rules.IgnoreFile(d.Name()) {
			return nil
		}
		if info, err := d.Info(); err == nil {
			stats.TotalSize += info.Size()
		}
		ext := filepath.Ext(d.Name())
		switch {
		case cfg.IsCodeExtension(ext):
			if config.IsHeaderExtension(ext) {
				stats.HeaderFiles++
			} else {
				stats.CodeFiles++
			}
		case cfg.IsProjectExtension(ext):
			stats.ProjectFiles++
		default:
			stats.OtherFiles++
		}
		return nil
	})

	name := ExtractName(cfg, projectPath)
	return &Info{
		Name:        name,
		SourcePath:  projectPath,
		TargetPath:  filepath.Join(cfg.MarkdownDir, NormalizeName(name)+".md"),
		GeneratedAt: time.Now(),
		Stats:       stats,
	}
}

// CodeFiles returns the project's code-extension files (project and other
// files excluded), sorted case-insensitively by base name. Used when file
// contents are embedded in the rendered document.
func CodeFiles(cfg *config.Config, projectPath string) []string {
	rules := scanner.NewRules(cfg.IgnoreFiles, cfg.IgnoreDirs)
	var files []string

	_ = filepath.WalkDir(projectPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != projectPath && rules.IgnoreDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if rules.IgnoreFile(d.Name()) {
			return nil
		}
		if cfg.IsCodeExtension(filepath.Ext(d.Name())) {
			files = append(files, p)
		}
		return nil
	})

	sortByBaseName(files)
	return files
}
