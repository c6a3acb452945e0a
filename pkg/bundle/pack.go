// File: pkg/bundle/pack.go
package bundle

import (
	"sort"
	"strings"
)

// rootGroupKey is the synthetic directory key shared by files with no '/'
// in their path.
const rootGroupKey = "."

// directoryKey returns the path portion before the last separator.
func directoryKey(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i]
	}
	return rootGroupKey
}

// groupByDirectory builds an ordered directory -> files mapping. The key
// slice records first-appearance order explicitly; iteration must never
// rely on map ordering, and file order within a group is the input order.
func groupByDirectory(files []*ProcessedFile) ([]string, map[string][]*ProcessedFile) {
	groups := make(map[string][]*ProcessedFile)
	var keys []string
	for _, f := range files {
		key := directoryKey(f.Path)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], f)
	}
	return keys, groups
}

// orderGroupKeys places the root key first and the remaining keys in
// case-insensitive lexicographic order. Root files carry top-level context
// (readme, manifests) and should prime the first chunk.
func orderGroupKeys(keys []string) []string {
	rest := make([]string, 0, len(keys))
	hasRoot := false
	for _, k := range keys {
		if k == rootGroupKey {
			hasRoot = true
			continue
		}
		rest = append(rest, k)
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return strings.ToLower(rest[i]) < strings.ToLower(rest[j])
	})
	if hasRoot {
		return append([]string{rootGroupKey}, rest...)
	}
	return rest
}

func selectedFiles(files []*ProcessedFile) []*ProcessedFile {
	selected := make([]*ProcessedFile, 0, len(files))
	for _, f := range files {
		if f.Selected {
			selected = append(selected, f)
		}
	}
	return selected
}

// OrderFiles returns the selected files in the pipeline's traversal order:
// root-level files first, then directory groups in case-insensitive
// lexicographic order, preserving input order within each group. Assembly
// and packing both run over this order, so concatenating all chunks
// reproduces the single assembled string.
func OrderFiles(files []*ProcessedFile) []*ProcessedFile {
	selected := selectedFiles(files)
	keys, groups := groupByDirectory(selected)
	ordered := make([]*ProcessedFile, 0, len(selected))
	for _, key := range orderGroupKeys(keys) {
		ordered = append(ordered, groups[key]...)
	}
	return ordered
}

// Pack splits the selected files into token-bounded chunks. Directories are
// packed atomically while they fit; a group too large for any chunk falls
// back to file-by-file placement, where a single block is always appended
// even if it alone exceeds the limit. All comparisons against the limit are
// inclusive. tokenLimit <= 0 is the caller's signal to skip packing and use
// Assemble directly; Pack is not invoked in that mode.
func Pack(files []*ProcessedFile, tokenLimit int, opts Options) []string {
	selected := selectedFiles(files)
	if len(selected) == 0 {
		return nil
	}

	keys, groups := groupByDirectory(selected)

	var chunks []string
	var current strings.Builder
	currentTokens := 0

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentTokens = 0
		}
	}

	for _, key := range orderGroupKeys(keys) {
		group := groups[key]
		if len(group) == 0 {
			continue
		}

		blocks := make([]string, len(group))
		groupTokens := 0
		for i, f := range group {
			blocks[i] = FormatFileBlock(f, opts)
			groupTokens += EstimateTokens(blocks[i])
		}

		// Atomic fit: the whole directory joins the current chunk.
		if currentTokens+groupTokens <= tokenLimit {
			for _, block := range blocks {
				current.WriteString(block)
			}
			currentTokens += groupTokens
			continue
		}

		// Fresh-chunk fit: the directory fits an empty chunk on its own.
		flush()
		if groupTokens <= tokenLimit {
			for _, block := range blocks {
				current.WriteString(block)
			}
			currentTokens = groupTokens
			continue
		}

		// Oversized group: place blocks one at a time in original order.
		// Appending is unconditional once the chunk is empty, so a single
		// oversized file becomes its own oversized chunk instead of
		// stalling the pipeline.
		for _, block := range blocks {
			blockTokens := EstimateTokens(block)
			if currentTokens+blockTokens > tokenLimit && current.Len() > 0 {
				flush()
			}
			current.WriteString(block)
			currentTokens += blockTokens
		}
	}

	flush()
	return chunks
}
