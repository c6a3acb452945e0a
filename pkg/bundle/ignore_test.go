package bundle

import "testing"

func TestIsIgnored(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"node_modules/foo/bar.js", true},
		{"src/index.ts", false},
		{"src/node_modules/pkg/index.js", true},
		{".git/HEAD", true},
		{"assets/logo.png", true},
		{"music/track.MP3", true},
		{"docs/manual.pdf", true},
		{"Cargo.lock", true},
		{"go.sum", true},
		{"src/.DS_Store", true},
		{"readme.md", false},
		{"cmd/root.go", false},
		{"a/b/c/d.sql", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsIgnored(tt.path); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIgnoreFilterExtras(t *testing.T) {
	f := NewIgnoreFilter([]string{"generated"}, []string{"snap", ".bak"})

	if !f.IsIgnored("generated/types.ts") {
		t.Error("extra directory not honored")
	}
	if !f.IsIgnored("src/state.snap") {
		t.Error("extra extension without dot not normalized")
	}
	if !f.IsIgnored("old/config.BAK") {
		t.Error("extra extension not matched case-insensitively")
	}
	if f.IsIgnored("src/state.go") {
		t.Error("unrelated file ignored")
	}

	// Defaults must survive extension.
	if !f.IsIgnored("node_modules/a.js") {
		t.Error("default denylist lost after extension")
	}
}

func TestIsIgnoredDir(t *testing.T) {
	f := NewIgnoreFilter(nil, nil)
	if !f.IsIgnoredDir("node_modules") {
		t.Error("node_modules should be ignored")
	}
	if f.IsIgnoredDir("src") {
		t.Error("src should not be ignored")
	}
}
