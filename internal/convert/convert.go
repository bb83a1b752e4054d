// Package convert sequences the conversion pipeline: discover projects,
// analyze each one, render its document, and write the results.
//
// Each project is processed independently; a failure is logged and counted but
// never aborts the remaining projects. The only hard failure is a missing
// input root, surfaced before any work begins.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code2md/internal/config"
	"code2md/internal/logging"
	"code2md/internal/project"
	"code2md/internal/reader"
	"code2md/internal/render"
)

// Converter runs the conversion pipeline for one configuration.
type Converter struct {
	cfg *config.Config
	log *logging.Logger
	doc *render.DocumentRenderer
}

// New creates a Converter. A nil logger discards all output.
func New(cfg *config.Config, log *logging.Logger) *Converter {
	if log == nil {
		log = logging.Nop()
	}
	return &Converter{
		cfg: cfg,
		log: log,
		doc: render.NewDocument(cfg, func(path string) string {
			return reader.ReadText(path, cfg.MaxFileSize)
		}),
	}
}

// Discover returns the project directories under the configured input root.
func (c *Converter) Discover() ([]string, error) {
	return project.Discover(c.cfg)
}

// Analyze produces the metadata and statistics for one project directory.
func (c *Converter) Analyze(path string) *project.Info {
	return project.Analyze(c.cfg, path)
}

// ConvertProject runs analyze, render, and write for a single project
// directory and reports success. Failures are logged, not returned.
func (c *Converter) ConvertProject(path string) bool {
	c.log.Info("converting project", logging.Fields{"path": path})

	info := project.Analyze(c.cfg, path)
	if err := c.writeDocument(info); err != nil {
		c.log.Error("conversion failed", logging.Fields{"path": path, "error": err.Error()})
		return false
	}
	c.log.Info("conversion complete", logging.Fields{"target": info.TargetPath})
	return true
}

// ConvertAll discovers every project and converts each one, returning the
// success and total counts. The error is non-nil only when the input root is
// missing or unreadable.
func (c *Converter) ConvertAll() (success, total int, err error) {
	projects, err := c.Discover()
	if err != nil {
		return 0, 0, err
	}
	c.log.Info("projects discovered", logging.Fields{"count": len(projects)})

	for _, path := range projects {
		if c.ConvertProject(path) {
			success++
		}
	}
	return success, len(projects), nil
}

// GenerateIndex writes the cross-project index document, overwriting any
// existing index.
func (c *Converter) GenerateIndex(infos []*project.Info) error {
	if err := c.ensureOutputDir(); err != nil {
		return err
	}
	indexPath := filepath.Join(c.cfg.MarkdownDir, render.IndexFileName)

	var buf bytes.Buffer
	render.RenderIndex(&buf, infos, time.Now())
	if err := os.WriteFile(indexPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	c.log.Info("index generated", logging.Fields{"path": indexPath})
	return nil
}

func (c *Converter) writeDocument(info *project.Info) error {
	if err := c.ensureOutputDir(); err != nil {
		return err
	}
	var buf bytes.Buffer
	c.doc.Render(&buf, info)
	if err := os.WriteFile(info.TargetPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (c *Converter) ensureOutputDir() error {
	if err := os.MkdirAll(c.cfg.MarkdownDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
