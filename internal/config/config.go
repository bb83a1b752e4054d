// Package config holds the resolved settings for a conversion run.
//
// Settings come from, in increasing precedence: built-in defaults, an optional
// YAML config file, CODE2MD_* environment variables, and command-line flags.
// The resulting Config is treated as immutable once a run starts.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".code2md.yaml"

// Config is the full configuration for a conversion run.
type Config struct {
	// CodeDir is the input root that is scanned for projects.
	CodeDir string
	// MarkdownDir is the output root for generated documents.
	MarkdownDir string

	CodeExtensions    map[string]struct{}
	ProjectExtensions map[string]struct{}

	// IgnoreFiles are glob patterns matched against file base names.
	IgnoreFiles []string
	// IgnoreDirs are directory names excluded from every traversal.
	IgnoreDirs map[string]struct{}

	// MaxFileSize caps how many bytes of a file are eligible for embedding.
	MaxFileSize int64

	IncludeContent   bool
	IncludeStats     bool
	IncludeStructure bool
}

// headerExtensions are the code extensions counted as headers rather than code.
var headerExtensions = map[string]struct{}{
	".h": {}, ".hpp": {}, ".hh": {},
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CodeDir:     "Code",
		MarkdownDir: "Markdown",
		CodeExtensions: toSet([]string{
			".c", ".h", ".cpp", ".hpp", ".cc", ".cxx",
			".py", ".java", ".js", ".ts", ".cs",
			".go", ".rs", ".php", ".rb", ".swift",
			".kt", ".scala", ".clj", ".hs", ".ml",
			".asm", ".s", ".a51",
		}),
		ProjectExtensions: toSet([]string{
			".uvproj", ".uvopt", ".uvgui", ".sln", ".vcxproj",
			".pro", ".qbs", ".cmake", ".mk", ".makefile",
			".json", ".xml", ".yml", ".yaml", ".toml",
			".cfg", ".conf", ".ini",
		}),
		IgnoreFiles: []string{
			".DS_Store", "Thumbs.db", ".gitignore",
			"__pycache__", "*.pyc", "*.pyo", "*.pyd",
			".vscode", ".idea", ".vs",
		},
		IgnoreDirs: toSet([]string{
			"__pycache__", ".git", ".svn", ".hg",
			"node_modules", ".vscode", ".idea", ".vs",
			"bin", "obj", "build", "dist", "target",
		}),
		MaxFileSize:      1 << 20,
		IncludeContent:   true,
		IncludeStats:     true,
		IncludeStructure: true,
	}
}

// IsCodeExtension reports whether ext (lowercased, dot included) is registered
// as source code.
func (c *Config) IsCodeExtension(ext string) bool {
	_, ok := c.CodeExtensions[strings.ToLower(ext)]
	return ok
}

// IsProjectExtension reports whether ext is registered as build/config metadata.
func (c *Config) IsProjectExtension(ext string) bool {
	_, ok := c.ProjectExtensions[strings.ToLower(ext)]
	return ok
}

// IsHeaderExtension reports whether ext is a header-file extension.
func IsHeaderExtension(ext string) bool {
	_, ok := headerExtensions[strings.ToLower(ext)]
	return ok
}

// IsIgnoredDir reports whether a directory with the given base name is
// excluded from traversal.
func (c *Config) IsIgnoredDir(name string) bool {
	_, ok := c.IgnoreDirs[name]
	return ok
}

// fileConfig is the serialized shape of Config. Extension sets are stored as
// lists and the size cap as a human-readable string.
type fileConfig struct {
	CodeDir           string   `mapstructure:"codeDir" yaml:"codeDir"`
	MarkdownDir       string   `mapstructure:"markdownDir" yaml:"markdownDir"`
	CodeExtensions    []string `mapstructure:"codeExtensions" yaml:"codeExtensions"`
	ProjectExtensions []string `mapstructure:"projectExtensions" yaml:"projectExtensions"`
	IgnoreFiles       []string `mapstructure:"ignoreFiles" yaml:"ignoreFiles"`
	IgnoreDirs        []string `mapstructure:"ignoreDirs" yaml:"ignoreDirs"`
	MaxFileSize       string   `mapstructure:"maxFileSize" yaml:"maxFileSize"`
	IncludeContent    bool     `mapstructure:"includeContent" yaml:"includeContent"`
	IncludeStats      bool     `mapstructure:"includeStats" yaml:"includeStats"`
	IncludeStructure  bool     `mapstructure:"includeStructure" yaml:"includeStructure"`
}

// Load reads configuration from the given file path, or from DefaultFileName
// in the working directory when path is empty. A missing default file yields
// the built-in configuration; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CODE2MD")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("codeDir", def.CodeDir)
	v.SetDefault("markdownDir", def.MarkdownDir)
	v.SetDefault("codeExtensions", keys(def.CodeExtensions))
	v.SetDefault("projectExtensions", keys(def.ProjectExtensions))
	v.SetDefault("ignoreFiles", def.IgnoreFiles)
	v.SetDefault("ignoreDirs", keys(def.IgnoreDirs))
	v.SetDefault("maxFileSize", "1MB")
	v.SetDefault("includeContent", def.IncludeContent)
	v.SetDefault("includeStats", def.IncludeStats)
	v.SetDefault("includeStructure", def.IncludeStructure)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, filepath.Ext(DefaultFileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// No config file in the working directory means defaults apply.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config %s: %w", DefaultFileName, err)
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return fc.resolve()
}

func (fc fileConfig) resolve() (*Config, error) {
	maxSize, err := ParseSize(fc.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("maxFileSize: %w", err)
	}
	return &Config{
		CodeDir:           fc.CodeDir,
		MarkdownDir:       fc.MarkdownDir,
		CodeExtensions:    toSet(fc.CodeExtensions),
		ProjectExtensions: toSet(fc.ProjectExtensions),
		IgnoreFiles:       fc.IgnoreFiles,
		IgnoreDirs:        toSet(fc.IgnoreDirs),
		MaxFileSize:       maxSize,
		IncludeContent:    fc.IncludeContent,
		IncludeStats:      fc.IncludeStats,
		IncludeStructure:  fc.IncludeStructure,
	}, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	fc := fileConfig{
		CodeDir:           c.CodeDir,
		MarkdownDir:       c.MarkdownDir,
		CodeExtensions:    keys(c.CodeExtensions),
		ProjectExtensions: keys(c.ProjectExtensions),
		IgnoreFiles:       append([]string(nil), c.IgnoreFiles...),
		IgnoreDirs:        keys(c.IgnoreDirs),
		MaxFileSize:       sizeString(c.MaxFileSize),
		IncludeContent:    c.IncludeContent,
		IncludeStats:      c.IncludeStats,
		IncludeStructure:  c.IncludeStructure,
	}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Z]*)$`)

var sizeMultipliers = map[string]int64{
	"B":  1,
	"K":  1 << 10, "KB": 1 << 10,
	"M": 1 << 20, "MB": 1 << 20,
	"G": 1 << 30, "GB": 1 << 30,
}

// ParseSize converts a human size string such as "1MB" or "512K" to bytes.
// Fractional values are allowed; the unit defaults to bytes.
func ParseSize(s string) (int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	m := sizePattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	unit := m[2]
	if unit == "" {
		unit = "B"
	}
	mult, ok := sizeMultipliers[unit]
	if !ok {
		return 0, fmt.Errorf("invalid size unit %q", unit)
	}
	return int64(value * float64(mult)), nil
}

func sizeString(n int64) string {
	switch {
	case n >= 1<<30 && n%(1<<30) == 0:
		return fmt.Sprintf("%dGB", n/(1<<30))
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n/(1<<20))
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	// Stable order keeps Save output and viper defaults deterministic.
	sort.Strings(out)
	return out
}
