// File: pkg/bundle/assemble.go
package bundle

import "strings"

// FormatFileBlock renders one file into its delimited block. The start and
// end marker lines carry the file's path in a fixed format that downstream
// renderers rely on to re-locate file boundaries; every block begins with a
// blank line, which is the only separator between concatenated blocks.
func FormatFileBlock(f *ProcessedFile, opts Options) string {
	var b strings.Builder
	b.WriteString("\n--- FILE START: ")
	b.WriteString(f.Path)
	b.WriteString(" ---\n")

	if opts.IncludeSummaries {
		if summary := strings.TrimSpace(f.Summary); summary != "" {
			prefix, suffix := CommentWrapper(f.Name)
			b.WriteString(prefix)
			b.WriteString(" ")
			b.WriteString(summary)
			if suffix != "" {
				b.WriteString(" ")
				b.WriteString(suffix)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(f.Content)
	b.WriteString("\n--- FILE END: ")
	b.WriteString(f.Path)
	b.WriteString(" ---\n")
	return b.String()
}

// Assemble concatenates the selected files into a single string, preserving
// input order. No reordering happens here; callers wanting the pipeline's
// directory-grouped order pass the files through OrderFiles first.
func Assemble(files []*ProcessedFile, opts Options) string {
	var b strings.Builder
	for _, f := range files {
		if !f.Selected {
			continue
		}
		b.WriteString(FormatFileBlock(f, opts))
	}
	return b.String()
}
