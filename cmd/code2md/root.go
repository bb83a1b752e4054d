package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"code2md/internal/config"
	"code2md/internal/convert"
	"code2md/internal/logging"
	"code2md/internal/project"
	"code2md/internal/version"
)

const rootLongDesc = `
code2md walks a directory of source-code projects and emits one Markdown
document per project, plus an INDEX.md linking them all. Each document embeds
the project's file tree, file statistics, and optionally the literal contents
of its code files with syntax-tagged fenced blocks.

A directory counts as a project when it contains at least one recognized code
or project file at any depth. Discovery looks at the top-level children of the
code directory and one level below them, so a layout of dated batch
directories holding project subdirectories works out of the box.
`

type options struct {
	configPath  string
	codeDir     string
	markdownDir string
	projectName string
	noContent   bool
	noStats     bool
	noStructure bool
	maxFileSize string
	verbose     bool
	logFormat   string
}

type cliApp struct {
	stdout io.Writer
	logOut io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func newRootCmd(stdout, logOut io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, logOut: logOut}
	cmd := &cobra.Command{
		Use:           "code2md [flags]",
		Short:         "Convert code projects to structured Markdown documentation",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = version.Version
	cmd.SetVersionTemplate("code2md version {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)

	cmd.PersistentFlags().StringVar(&app.opts.configPath, "config", "", "config file path (default: .code2md.yaml in the working directory)")

	flags := cmd.Flags()
	flags.StringVar(&app.opts.codeDir, "code-dir", "", "code source directory (default: Code)")
	flags.StringVar(&app.opts.markdownDir, "markdown-dir", "", "Markdown output directory (default: Markdown)")
	flags.StringVar(&app.opts.projectName, "project", "", "convert only projects matching this name or path fragment")
	flags.BoolVar(&app.opts.noContent, "no-content", false, "omit file contents, keep structure and statistics")
	flags.BoolVar(&app.opts.noStats, "no-stats", false, "omit file statistics")
	flags.BoolVar(&app.opts.noStructure, "no-structure", false, "omit the project structure tree")
	flags.StringVar(&app.opts.maxFileSize, "max-file-size", "", "maximum embeddable file size (default: 1MB)")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&app.opts.logFormat, "log-format", "human", "log output format: human or json")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.resolveConfig(cmd)
		if err != nil {
			return err
		}
		return app.execute(cfg)
	}

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

// resolveConfig loads the layered configuration and applies explicit flag
// overrides on top. Precedence: flags > environment > config file > defaults.
func (app *cliApp) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(app.opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("code-dir") {
		cfg.CodeDir = app.opts.codeDir
	}
	if flags.Changed("markdown-dir") {
		cfg.MarkdownDir = app.opts.markdownDir
	}
	if flags.Changed("max-file-size") {
		size, err := config.ParseSize(app.opts.maxFileSize)
		if err != nil {
			return nil, err
		}
		cfg.MaxFileSize = size
	}
	if app.opts.noContent {
		cfg.IncludeContent = false
	}
	if app.opts.noStats {
		cfg.IncludeStats = false
	}
	if app.opts.noStructure {
		cfg.IncludeStructure = false
	}
	return cfg, nil
}

func (app *cliApp) newLogger() *logging.Logger {
	level := logging.LevelInfo
	if app.opts.verbose {
		level = logging.LevelDebug
	}
	format := logging.FormatHuman
	if strings.EqualFold(app.opts.logFormat, "json") {
		format = logging.FormatJSON
	}
	out := app.logOut
	if out == nil {
		out = os.Stderr
	}
	return logging.New(level, format, logging.WithOutput(out))
}

func (app *cliApp) execute(cfg *config.Config) error {
	log := app.newLogger()
	conv := convert.New(cfg, log)

	log.Debug("configuration resolved", logging.Fields{
		"codeDir":     cfg.CodeDir,
		"markdownDir": cfg.MarkdownDir,
		"maxFileSize": cfg.MaxFileSize,
	})

	if app.opts.projectName != "" {
		return app.convertSpecific(conv)
	}

	success, total, err := conv.ConvertAll()
	if err != nil {
		return err
	}
	if total == 0 {
		return fmt.Errorf("no projects found under %s", cfg.CodeDir)
	}

	if success > 0 {
		if err := app.generateIndex(conv); err != nil {
			return err
		}
	}

	fmt.Fprintf(app.stdout, "Converted %d/%d projects\n", success, total)
	if success < total {
		return fmt.Errorf("%d projects failed to convert", total-success)
	}
	return nil
}

// generateIndex re-discovers and re-analyzes every project so the index
// reflects the tree as written, then writes INDEX.md.
func (app *cliApp) generateIndex(conv *convert.Converter) error {
	paths, err := conv.Discover()
	if err != nil {
		return err
	}
	infos := make([]*project.Info, 0, len(paths))
	for _, path := range paths {
		infos = append(infos, conv.Analyze(path))
	}
	return conv.GenerateIndex(infos)
}

// convertSpecific converts the single project whose name or path contains the
// --project fragment. Zero or multiple matches are errors.
func (app *cliApp) convertSpecific(conv *convert.Converter) error {
	paths, err := conv.Discover()
	if err != nil {
		return err
	}

	pattern := strings.ToLower(app.opts.projectName)
	var matches []string
	for _, path := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(path)), pattern) ||
			strings.Contains(strings.ToLower(path), pattern) {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		if app.opts.verbose {
			for _, path := range paths {
				fmt.Fprintf(app.stdout, "  - %s\n", filepath.Base(path))
			}
		}
		return fmt.Errorf("no project matches %q", app.opts.projectName)
	case 1:
		if !conv.ConvertProject(matches[0]) {
			return fmt.Errorf("project %s failed to convert", filepath.Base(matches[0]))
		}
		fmt.Fprintf(app.stdout, "Converted project %s\n", filepath.Base(matches[0]))
		return nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return fmt.Errorf("pattern %q matches multiple projects: %s", app.opts.projectName, strings.Join(names, ", "))
	}
}
