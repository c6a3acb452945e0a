// File: pkg/bundle/ignore.go
package bundle

import (
	"path"
	"strings"
)

// ignoredDirectories lists directory names that are pure noise for text
// bundling: version control internals, dependency caches, build outputs,
// and IDE metadata.
var ignoredDirectories = map[string]bool{
	".git":             true,
	".svn":             true,
	".hg":              true,
	"node_modules":     true,
	"bower_components": true,
	"vendor":           true,
	"dist":             true,
	"build":            true,
	"out":              true,
	"target":           true,
	"bin":              true,
	"obj":              true,
	"__pycache__":      true,
	".venv":            true,
	"venv":             true,
	".idea":            true,
	".vscode":          true,
	".vs":              true,
	".cache":           true,
	".next":            true,
	".nuxt":            true,
	".terraform":       true,
	".gradle":          true,
	"coverage":         true,
	".nyc_output":      true,
}

// ignoredFilenames lists exact basenames that carry no useful text.
var ignoredFilenames = map[string]bool{
	".DS_Store":   true,
	"Thumbs.db":   true,
	"desktop.ini": true,
	".gitkeep":    true,
	".keep":       true,
}

// ignoredExtensions lists lowercased extensions for images, audio/video,
// archives and binaries, documents, and lock files.
var ignoredExtensions = map[string]bool{
	// Images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".svg": true, ".webp": true, ".tif": true, ".tiff": true,
	".psd": true,
	// Audio / video
	".mp3": true, ".wav": true, ".ogg": true, ".flac": true, ".aac": true,
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
	".mpg": true, ".mpeg": true,
	// Archives / binaries
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true,
	".xz": true, ".rar": true, ".7z": true, ".exe": true, ".dll": true,
	".so": true, ".dylib": true, ".bin": true, ".class": true, ".pyc": true,
	".o": true, ".a": true, ".wasm": true,
	// Documents
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".odt": true,
	// Fonts
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	// Lock files and checksums
	".lock": true, ".sum": true,
}

// IgnoreFilter is the static noise predicate for paths. The zero defaults
// cover the fixed denylists above; construction may extend (never replace)
// them from configuration.
type IgnoreFilter struct {
	dirs  map[string]bool
	names map[string]bool
	exts  map[string]bool
}

// NewIgnoreFilter builds a filter from the default denylists plus any extra
// directory names and extensions. Extensions are normalized to a leading
// dot and lowercased.
func NewIgnoreFilter(extraDirs, extraExts []string) *IgnoreFilter {
	f := &IgnoreFilter{
		dirs:  make(map[string]bool, len(ignoredDirectories)+len(extraDirs)),
		names: ignoredFilenames,
		exts:  make(map[string]bool, len(ignoredExtensions)+len(extraExts)),
	}
	for d := range ignoredDirectories {
		f.dirs[d] = true
	}
	for _, d := range extraDirs {
		if d = strings.TrimSpace(d); d != "" {
			f.dirs[d] = true
		}
	}
	for e := range ignoredExtensions {
		f.exts[e] = true
	}
	for _, e := range extraExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		f.exts[e] = true
	}
	return f
}

// IsIgnored reports whether the '/'-separated relative path belongs to
// known noise. Pure and total; it never fails.
func (f *IgnoreFilter) IsIgnored(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if f.dirs[segment] {
			return true
		}
	}
	base := path.Base(p)
	if f.names[base] {
		return true
	}
	return f.exts[strings.ToLower(path.Ext(base))]
}

// IsIgnoredDir reports whether a bare directory name is a known noise
// directory. Used by walkers to prune whole subtrees early.
func (f *IgnoreFilter) IsIgnoredDir(name string) bool {
	return f.dirs[name]
}

var defaultIgnoreFilter = NewIgnoreFilter(nil, nil)

// IsIgnored applies the default denylists.
func IsIgnored(p string) bool {
	return defaultIgnoreFilter.IsIgnored(p)
}
