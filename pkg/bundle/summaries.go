// File: pkg/bundle/summaries.go
package bundle

// AttachSummaries applies externally generated summary annotations to the
// matching files. Attachment is a plain field update; it does not trigger
// re-chunking. Returns the number of summaries attached.
func AttachSummaries(files []*ProcessedFile, summaries map[string]string) int {
	if len(summaries) == 0 {
		return 0
	}
	attached := 0
	for _, f := range files {
		if s, ok := summaries[f.Path]; ok && s != "" {
			f.Summary = s
			attached++
		}
	}
	return attached
}
