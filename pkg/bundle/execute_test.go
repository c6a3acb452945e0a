package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestChunkPath(t *testing.T) {
	tests := []struct {
		output string
		index  int
		want   string
	}{
		{"bundle.txt", 0, "bundle.part-001.txt"},
		{"bundle.txt", 11, "bundle.part-012.txt"},
		{"out/ctx.md", 2, "out/ctx.part-003.md"},
		{"noext", 0, "noext.part-001"},
	}
	for _, tt := range tests {
		if got := chunkPath(tt.output, tt.index); got != tt.want {
			t.Errorf("chunkPath(%q, %d) = %q, want %q", tt.output, tt.index, got, tt.want)
		}
	}
}

func TestRunSingleOutput(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "readme.md", []byte("# hello\n"))
	writeTestFile(t, root, "src/a.go", []byte("package a\n"))

	outDir := t.TempDir()
	output := filepath.Join(outDir, "bundle.txt")
	treeOut := filepath.Join(outDir, "tree.txt")

	err := Run(Arguments{
		Paths:         []string{root},
		Output:        output,
		Tree:          treeOut,
		MaxFileSizeKB: 1024,
		Verbose:       true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "--- FILE START: readme.md ---") ||
		!strings.Contains(out, "--- FILE END: src/a.go ---") {
		t.Errorf("output missing file markers:\n%s", out)
	}
	// Root files precede directory files.
	if strings.Index(out, "readme.md") > strings.Index(out, "src/a.go") {
		t.Error("root file should precede directory files")
	}

	tree, err := os.ReadFile(treeOut)
	if err != nil {
		t.Fatalf("tree not written: %v", err)
	}
	if !strings.Contains(string(tree), "└── src/") {
		t.Errorf("tree output malformed:\n%s", tree)
	}
}

func TestRunChunkedOutput(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", []byte(strings.Repeat("a", 400)))
	writeTestFile(t, root, "sub/b.txt", []byte(strings.Repeat("b", 400)))

	outDir := t.TempDir()
	output := filepath.Join(outDir, "bundle.txt")

	err := Run(Arguments{
		Paths:         []string{root},
		Output:        output,
		TokenLimit:    120,
		MaxFileSizeKB: 1024,
		Verbose:       true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(outDir, "bundle.part-001.txt"))
	if err != nil {
		t.Fatalf("first chunk not written: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, "bundle.part-002.txt"))
	if err != nil {
		t.Fatalf("second chunk not written: %v", err)
	}
	if !strings.Contains(string(first), "a.txt") || !strings.Contains(string(second), "sub/b.txt") {
		t.Error("chunk contents not split by directory group")
	}
}

func TestRunAttachesSummaries(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "main.go", []byte("package main\n"))

	output := filepath.Join(t.TempDir(), "bundle.txt")
	err := Run(Arguments{
		Paths:            []string{root},
		Output:           output,
		MaxFileSizeKB:    1024,
		Summaries:        map[string]string{"main.go": "program entry point"},
		IncludeSummaries: true,
		Verbose:          true,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), "// program entry point\npackage main\n") {
		t.Errorf("summary annotation missing:\n%s", data)
	}
}
