// File: pkg/bundle/tree.go
package bundle

import (
	"fmt"
	"strings"
)

// FileNode is the tree projection of ProcessedFile paths, shaped for
// selection UIs. Children exist only on directory nodes and keep the
// first-seen insertion order of the input sequence.
type FileNode struct {
	Name     string
	Path     string
	IsFile   bool
	Checked  bool
	Children []*FileNode
}

// BuildTree reconstructs a hierarchical node forest from a flat, ordered
// file-path list. Every path prefix produces exactly one node, created on
// first encounter and reused thereafter. Sibling order is first-appearance
// order, not alphabetical; callers needing deterministic tree order must
// pre-sort the input.
func BuildTree(files []*ProcessedFile) []*FileNode {
	var forest []*FileNode
	for _, f := range files {
		segments := strings.Split(f.Path, "/")
		level := &forest
		prefix := ""
		for i, segment := range segments {
			if prefix == "" {
				prefix = segment
			} else {
				prefix = prefix + "/" + segment
			}

			var node *FileNode
			for _, sibling := range *level {
				if sibling.Path == prefix {
					node = sibling
					break
				}
			}
			if node == nil {
				node = &FileNode{
					Name:    segment,
					Path:    prefix,
					IsFile:  i == len(segments)-1,
					Checked: true,
				}
				if node.IsFile {
					node.Checked = f.Selected
				}
				*level = append(*level, node)
			}
			level = &node.Children
		}
	}
	return forest
}

// RenderTree renders the forest with box-drawing connectors, one entry per
// line, directories suffixed with '/'.
func RenderTree(forest []*FileNode) string {
	var b strings.Builder
	renderNodes(&b, forest, "")
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []*FileNode, prefix string) {
	for i, node := range nodes {
		connector := "├── "
		extension := "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			extension = "    "
		}

		name := node.Name
		if !node.IsFile {
			name += "/"
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, name)

		if len(node.Children) > 0 {
			renderNodes(b, node.Children, prefix+extension)
		}
	}
}
