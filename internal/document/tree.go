package document

import (
	"path/filepath"
	"sort"
	"strings"
)

// treeNode is one entry in the rendered file-tree summary.
type treeNode struct {
	name     string
	children map[string]*treeNode
	isDir    bool
}

// RenderTree renders the selected files as an indented tree rooted at root,
// using the relative path of each file. Directories sort before files,
// case-insensitively, so the output is stable across runs.
func RenderTree(files []string, root string) string {
	top := &treeNode{children: map[string]*treeNode{}, isDir: true}

	for _, file := range files {
		var parts []string
		for _, part := range strings.Split(filepath.ToSlash(DisplayPath(file, root)), "/") {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}
		node := top
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{
					name:     part,
					children: map[string]*treeNode{},
					isDir:    i < len(parts)-1,
				}
				node.children[part] = child
			}
			node = child
		}
	}

	var b strings.Builder
	if root != "" {
		b.WriteString(filepath.Base(root) + "/\n")
	}
	renderChildren(&b, top, "")
	return b.String()
}

func renderChildren(b *strings.Builder, node *treeNode, prefix string) {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		return strings.ToLower(children[i].name) < strings.ToLower(children[j].name)
	})

	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		name := child.name
		if child.isDir {
			name += "/"
		}
		b.WriteString(prefix + connector + name + "\n")

		if child.isDir {
			renderChildren(b, child, prefix+extension)
		}
	}
}
