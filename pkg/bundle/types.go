// File: pkg/bundle/types.go
package bundle

// ProcessedFile is the unit the bundling pipeline operates on. The read
// provider produces these; everything downstream (tree building, assembly,
// chunk packing) consumes them without touching the filesystem again.
type ProcessedFile struct {
	Path     string // Relative, '/'-separated path; unique across the set.
	Name     string // Basename of Path.
	Content  string // File text, or one of the placeholder markers below.
	Size     int64  // Size of the source in bytes.
	Selected bool   // Sole gate for inclusion in assembly and chunking.
	IsBinary bool   // True when a null byte was observed in the content.
	Summary  string // Optional annotation attached by an external collaborator.
}

// Options configures output assembly and chunk packing.
type Options struct {
	IncludeSummaries bool // Prepend a comment-wrapped summary line per file.
}

// Placeholder strings the read provider substitutes for content that cannot
// be included verbatim. They flow through assembly and packing like ordinary
// text; no component treats them as errors.
const (
	SizeExceededPlaceholder = "[Content not included: file exceeds size limit]"
	BinaryPlaceholder       = "[Content not included: binary file]"
)

// Arguments holds the configuration for one bundling run.
type Arguments struct {
	Paths            []string          // Files or directories to process.
	Output           string            // Destination for the assembled output (or chunk parts).
	Tree             string            // Optional destination for the rendered file tree.
	TokenLimit       int               // Chunk budget; <= 0 disables packing.
	MaxFileSizeKB    int               // Files larger than this get the size placeholder.
	MaxWorkers       int               // Concurrent readers; <= 0 means NumCPU.
	ExcludePatterns  []string          // User exclusion patterns (glob shorthand or /regex/).
	ExtraIgnoreDirs  []string          // Additional noise directories beyond the defaults.
	ExtraIgnoreExts  []string          // Additional denied extensions beyond the defaults.
	Summaries        map[string]string // Path -> summary annotations to attach.
	IncludeSummaries bool              // Emit summary annotation lines.
	CopyToClipboard  bool              // Copy the assembled text to the system clipboard.
	Verbose          bool              // Detailed per-file logging.
}
