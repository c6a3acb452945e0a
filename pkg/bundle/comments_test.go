package bundle

import "testing"

func TestCommentWrapper(t *testing.T) {
	tests := []struct {
		filename   string
		wantPrefix string
		wantSuffix string
	}{
		{"main.go", "//", ""},
		{"app.TSX", "//", ""},
		{"script.py", "#", ""},
		{"query.sql", "--", ""},
		{"style.css", "/*", "*/"},
		{"index.html", "<!--", "-->"},
		{"readme.md", "<!--", "-->"},
		{"Makefile", "#", ""},
		{"data.unknownext", "#", ""},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			prefix, suffix := CommentWrapper(tt.filename)
			if prefix != tt.wantPrefix || suffix != tt.wantSuffix {
				t.Errorf("CommentWrapper(%q) = (%q, %q), want (%q, %q)",
					tt.filename, prefix, suffix, tt.wantPrefix, tt.wantSuffix)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"12345678", 2},
	}
	for _, tt := range tests {
		if got := EstimateTokens(tt.text); got != tt.want {
			t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
