package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestIgnoreFilePatterns(t *testing.T) {
	rules := NewRules([]string{".DS_Store", "*.pyc", "Thumbs.db"}, nil)

	cases := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"cache.pyc", true},
		{"Thumbs.db", true},
		{"main.c", false},
		{"pyc", false},
	}
	for _, tc := range cases {
		if got := rules.IgnoreFile(tc.name); got != tc.want {
			t.Errorf("IgnoreFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIgnoreDirExactMatch(t *testing.T) {
	rules := NewRules(nil, map[string]struct{}{"node_modules": {}, ".git": {}})
	if !rules.IgnoreDir("node_modules") {
		t.Error("node_modules should be ignored")
	}
	if rules.IgnoreDir("node_modules_backup") {
		t.Error("ignore dirs must match exactly, not by prefix")
	}
}

func TestRenderTreeDirectoriesFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"))
	if err := os.Mkdir(filepath.Join(root, "A"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	lines := RenderTree(root, Rules{}, DefaultMaxDepth)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "├── A/" {
		t.Errorf("first line = %q, want %q", lines[0], "├── A/")
	}
	if lines[1] != "└── b.txt" {
		t.Errorf("second line = %q, want %q", lines[1], "└── b.txt")
	}
}

func TestRenderTreeNestedIndentation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.c"))
	writeFile(t, filepath.Join(root, "zzz.txt"))

	lines := RenderTree(root, Rules{}, DefaultMaxDepth)
	want := []string{
		"├── src/",
		"│   └── main.c",
		"└── zzz.txt",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTreeLastDirectoryUsesSpaces(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "inner.c"))

	lines := RenderTree(root, Rules{}, DefaultMaxDepth)
	want := []string{
		"└── sub/",
		"    └── inner.c",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTreeCaseInsensitiveOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Beta.c"))
	writeFile(t, filepath.Join(root, "alpha.c"))

	lines := RenderTree(root, Rules{}, DefaultMaxDepth)
	if !strings.Contains(lines[0], "alpha.c") || !strings.Contains(lines[1], "Beta.c") {
		t.Errorf("expected case-insensitive order, got %v", lines)
	}
}

func TestRenderTreeExcludesIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.c"))
	writeFile(t, filepath.Join(root, "drop.pyc"))
	writeFile(t, filepath.Join(root, ".git", "config"))

	rules := NewRules([]string{"*.pyc"}, map[string]struct{}{".git": {}})
	lines := RenderTree(root, rules, DefaultMaxDepth)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "drop.pyc") {
		t.Error("ignored file should not be listed")
	}
	if strings.Contains(joined, ".git") {
		t.Error("ignored directory should not be listed")
	}
	if !strings.Contains(joined, "keep.c") {
		t.Error("retained file missing from tree")
	}
}

func TestRenderTreeDepthCap(t *testing.T) {
	root := t.TempDir()
	deep := root
	for i := 0; i < 4; i++ {
		deep = filepath.Join(deep, "d")
	}
	writeFile(t, filepath.Join(deep, "leaf.c"))

	lines := RenderTree(root, Rules{}, 3)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, truncatedMarker) {
		t.Errorf("expected truncation marker, got:\n%s", joined)
	}
	if strings.Contains(joined, "leaf.c") {
		t.Error("entries beyond the depth cap should not appear")
	}
}

func TestRenderTreeInaccessibleRoot(t *testing.T) {
	lines := RenderTree(filepath.Join(t.TempDir(), "missing"), Rules{}, DefaultMaxDepth)
	if len(lines) != 1 || lines[0] != inaccessibleMarker {
		t.Errorf("expected single inaccessible marker, got %v", lines)
	}
}
