// File: pkg/bundle/comments.go
package bundle

import (
	"path"
	"strings"
)

type commentStyle struct {
	prefix string
	suffix string
}

var commentStyles = map[string]commentStyle{
	// C-family line comments
	".go": {"//", ""}, ".js": {"//", ""}, ".jsx": {"//", ""},
	".ts": {"//", ""}, ".tsx": {"//", ""}, ".java": {"//", ""},
	".c": {"//", ""}, ".h": {"//", ""}, ".cpp": {"//", ""},
	".hpp": {"//", ""}, ".cc": {"//", ""}, ".cs": {"//", ""},
	".swift": {"//", ""}, ".kt": {"//", ""}, ".rs": {"//", ""},
	".scala": {"//", ""}, ".dart": {"//", ""}, ".php": {"//", ""},

	// Hash line comments
	".py": {"#", ""}, ".rb": {"#", ""}, ".sh": {"#", ""},
	".bash": {"#", ""}, ".zsh": {"#", ""}, ".fish": {"#", ""},
	".pl": {"#", ""}, ".r": {"#", ""}, ".yml": {"#", ""},
	".yaml": {"#", ""}, ".toml": {"#", ""}, ".mk": {"#", ""},
	".tf": {"#", ""}, ".env": {"#", ""},

	// Dash-dash line comments
	".sql": {"--", ""}, ".lua": {"--", ""}, ".hs": {"--", ""},
	".elm": {"--", ""},

	// Block comments
	".css": {"/*", "*/"}, ".scss": {"/*", "*/"}, ".less": {"/*", "*/"},
	".html": {"<!--", "-->"}, ".htm": {"<!--", "-->"},
	".xml": {"<!--", "-->"}, ".vue": {"<!--", "-->"},
	".md": {"<!--", "-->"}, ".markdown": {"<!--", "-->"},
}

// CommentWrapper maps a filename's extension to a comment delimiter pair.
// Unrecognized extensions default to hash-style line comments.
func CommentWrapper(filename string) (prefix, suffix string) {
	ext := strings.ToLower(path.Ext(filename))
	if style, ok := commentStyles[ext]; ok {
		return style.prefix, style.suffix
	}
	return "#", ""
}
