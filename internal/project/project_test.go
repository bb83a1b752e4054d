package project

import (
	"os"
	"path/filepath"
	"testing"

	"code2md/internal/config"
)

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.CodeDir = filepath.Join(root, "Code")
	cfg.MarkdownDir = filepath.Join(root, "Markdown")
	return cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestIsProjectFindsCodeAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(root, "proj")
	writeFile(t, filepath.Join(dir, "sub", "deep", "main.c"), "int main(){}")

	if !IsProject(cfg, dir) {
		t.Error("directory with a nested code file should qualify")
	}
}

func TestIsProjectAcceptsProjectFiles(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(root, "proj")
	writeFile(t, filepath.Join(dir, "settings.json"), "{}")

	if !IsProject(cfg, dir) {
		t.Error("directory with a project file should qualify")
	}
}

func TestIsProjectRejectsUnrecognized(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(root, "proj")
	writeFile(t, filepath.Join(dir, "image.png"), "binary")
	writeFile(t, filepath.Join(dir, "notes.txt"), "text")

	if IsProject(cfg, dir) {
		t.Error("directory without recognized extensions should not qualify")
	}
}

func TestIsProjectPrunesIgnoredSubtrees(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(root, "proj")
	writeFile(t, filepath.Join(dir, "node_modules", "lib.js"), "x")

	if IsProject(cfg, dir) {
		t.Error("code inside an ignored directory must not qualify the project")
	}
}

func TestIsProjectMissingDirectory(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	if IsProject(cfg, filepath.Join(root, "absent")) {
		t.Error("missing directory should not qualify")
	}
}

func TestDiscoverTopLevelAndBatched(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	// Direct project under the code root.
	writeFile(t, filepath.Join(cfg.CodeDir, "Direct", "main.c"), "x")
	// Batch directory holding two projects one level down.
	writeFile(t, filepath.Join(cfg.CodeDir, "Batch_20230601", "One", "a.c"), "x")
	writeFile(t, filepath.Join(cfg.CodeDir, "Batch_20230601", "Two", "b.py"), "x")

	projects, err := Discover(cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 project roots, got %d: %v", len(projects), projects)
	}
}

func TestDiscoverBatchItselfQualifies(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	// The batch dir has a loose code file, so it qualifies as one project and
	// its children are not searched separately.
	writeFile(t, filepath.Join(cfg.CodeDir, "Batch", "loose.c"), "x")
	writeFile(t, filepath.Join(cfg.CodeDir, "Batch", "Child", "a.c"), "x")

	projects, err := Discover(cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(projects) != 1 || filepath.Base(projects[0]) != "Batch" {
		t.Fatalf("expected [Batch], got %v", projects)
	}
}

func TestDiscoverDeepCodeQualifiesTopLevelChild(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	writeFile(t, filepath.Join(cfg.CodeDir, "a", "b", "c", "deep.c"), "x")

	projects, err := Discover(cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// Qualification is recursive, so the top-level child is the project root
	// even when its code sits several levels down.
	if len(projects) != 1 || filepath.Base(projects[0]) != "a" {
		t.Fatalf("expected [a], got %v", projects)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	cfg := testConfig(t.TempDir())
	if _, err := Discover(cfg); err == nil {
		t.Error("missing code directory must be a hard error")
	}
}

func TestDiscoverSkipsIgnoredTopLevel(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	writeFile(t, filepath.Join(cfg.CodeDir, ".git", "hook.py"), "x")
	writeFile(t, filepath.Join(cfg.CodeDir, "Real", "main.c"), "x")

	projects, err := Discover(cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(projects) != 1 || filepath.Base(projects[0]) != "Real" {
		t.Fatalf("expected [Real], got %v", projects)
	}
}

func TestAnalyzeBucketsAndSizes(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(cfg.CodeDir, "Proj")
	writeFile(t, filepath.Join(dir, "main.c"), "aaaa")
	writeFile(t, filepath.Join(dir, "util.c"), "bb")
	writeFile(t, filepath.Join(dir, "util.h"), "c")
	writeFile(t, filepath.Join(dir, "build.json"), "{}")
	writeFile(t, filepath.Join(dir, "logo.png"), "png")
	writeFile(t, filepath.Join(dir, ".DS_Store"), "junkjunkjunk")

	info := Analyze(cfg, dir)
	stats := info.Stats
	if stats.CodeFiles != 2 {
		t.Errorf("CodeFiles = %d, want 2", stats.CodeFiles)
	}
	if stats.HeaderFiles != 1 {
		t.Errorf("HeaderFiles = %d, want 1", stats.HeaderFiles)
	}
	if stats.ProjectFiles != 1 {
		t.Errorf("ProjectFiles = %d, want 1", stats.ProjectFiles)
	}
	if stats.OtherFiles != 1 {
		t.Errorf("OtherFiles = %d, want 1", stats.OtherFiles)
	}
	// 4 + 2 + 1 + 2 + 3; the ignored .DS_Store contributes nothing.
	if stats.TotalSize != 12 {
		t.Errorf("TotalSize = %d, want 12", stats.TotalSize)
	}
}

func TestAnalyzeTargetPath(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(cfg.CodeDir, "Widget_20230615")
	writeFile(t, filepath.Join(dir, "w.c"), "x")

	info := Analyze(cfg, dir)
	if info.Name != "Widget_20230615" {
		t.Errorf("Name = %q, want %q", info.Name, "Widget_20230615")
	}
	want := filepath.Join(cfg.MarkdownDir, "Widget.md")
	if info.TargetPath != want {
		t.Errorf("TargetPath = %q, want %q", info.TargetPath, want)
	}
}

func TestCodeFilesSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	cfg := testConfig(root)
	dir := filepath.Join(cfg.CodeDir, "Proj")
	writeFile(t, filepath.Join(dir, "sub", "Alpha.c"), "x")
	writeFile(t, filepath.Join(dir, "beta.c"), "x")
	writeFile(t, filepath.Join(dir, "config.json"), "{}")
	writeFile(t, filepath.Join(dir, "junk.pyc"), "x")

	files := CodeFiles(cfg, dir)
	if len(files) != 2 {
		t.Fatalf("expected 2 code files, got %v", files)
	}
	if filepath.Base(files[0]) != "Alpha.c" || filepath.Base(files[1]) != "beta.c" {
		t.Errorf("expected case-insensitive filename order, got %v", files)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Foo_20230615", "Foo"},
		{"Foo", "Foo"},
		{"Foo_2023", "Foo_2023"},
		{"Foo_202306155", "Foo_202306155"},
		{"_20230615", ""},
		{"Bar_20230615_20230616", "Bar_20230615"},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractNameSkipsRootsAndDotDirs(t *testing.T) {
	cfg := config.Default()

	if got := ExtractName(cfg, filepath.Join("Code", "Batch", "Widget")); got != "Widget" {
		t.Errorf("ExtractName = %q, want Widget", got)
	}
	// Dot-prefixed leaf components are skipped.
	if got := ExtractName(cfg, filepath.Join("Code", "Widget", ".cache")); got != "Widget" {
		t.Errorf("ExtractName = %q, want Widget", got)
	}
	// Nothing meaningful falls back to the leaf name.
	if got := ExtractName(cfg, "Code"); got != "Code" {
		t.Errorf("ExtractName = %q, want Code", got)
	}
}
