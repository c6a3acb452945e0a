package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Output != def.Output || cfg.MaxFileSizeKB != def.MaxFileSizeKB {
		t.Errorf("defaults not returned: %+v", cfg)
	}
}

func TestLoadFromRoot(t *testing.T) {
	root := t.TempDir()
	data := []byte(`
output: ctx.txt
token_limit: 4000
exclude:
  - "*.test.ts"
  - dist/
ignore_dirs:
  - generated
include_summaries: true
`)
	if err := os.WriteFile(filepath.Join(root, FileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "ctx.txt" {
		t.Errorf("output = %q", cfg.Output)
	}
	if cfg.TokenLimit != 4000 {
		t.Errorf("token_limit = %d", cfg.TokenLimit)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[1] != "dist/" {
		t.Errorf("exclude = %v", cfg.Exclude)
	}
	if len(cfg.IgnoreDirs) != 1 || cfg.IgnoreDirs[0] != "generated" {
		t.Errorf("ignore_dirs = %v", cfg.IgnoreDirs)
	}
	if !cfg.IncludeSummaries {
		t.Error("include_summaries not parsed")
	}
	// Unset fields keep their defaults.
	if cfg.MaxFileSizeKB != Default().MaxFileSizeKB {
		t.Errorf("max_file_size_kb = %d", cfg.MaxFileSizeKB)
	}
}

func TestLoadExplicitPathErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("output: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Error("malformed config should fail loudly")
	}
}

func TestLoadSummaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.yaml")
	data := []byte(`
main.go: program entry point
src/util.go: shared helpers
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	summaries, err := LoadSummaries(path)
	if err != nil {
		t.Fatalf("LoadSummaries: %v", err)
	}
	if summaries["main.go"] != "program entry point" {
		t.Errorf("summaries = %v", summaries)
	}
	if len(summaries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(summaries))
	}

	if _, err := LoadSummaries(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing summaries file should error")
	}
}
