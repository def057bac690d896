package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ctxcat/model"
)

// Document is a fully rendered Markdown context document.
type Document struct {
	Content string
	// Errors lists files that were replaced by a placeholder note because
	// their contents could not be read.
	Errors []model.SkippedFile
}

// Candidate fence delimiters, in order of preference. The composer picks the
// first one that appears nowhere in the rendered contents, so that files
// containing Markdown fences do not break the document.
var fenceDelimiters = []string{"```", "~~~", "`````", "~~~~~", "~~~~~~~~~~~"}

// Compose reads every file and renders the document: a file-tree summary
// followed by each file's contents in a fenced block headed by its path
// relative to root. A file that cannot be read becomes a placeholder note
// rather than failing the whole document. Output is deterministic for an
// unchanged selection.
func Compose(files []string, root string) Document {
	var doc Document

	contents := make(map[string]string, len(files))
	readErrs := make(map[string]error)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			readErrs[file] = err
			doc.Errors = append(doc.Errors, model.SkippedFile{Path: file, Reason: err.Error()})
			continue
		}
		contents[file] = string(data)
	}

	tree := RenderTree(files, root)

	scanable := make([]string, 0, len(contents)+1)
	scanable = append(scanable, tree)
	for _, file := range files {
		if body, ok := contents[file]; ok {
			scanable = append(scanable, body)
		}
	}
	delim := chooseDelimiter(scanable)

	var b strings.Builder
	b.WriteString("# File Structure\n\n")
	b.WriteString(delim + "\n")
	b.WriteString(tree)
	if !strings.HasSuffix(tree, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(delim + "\n")
	b.WriteString("\n# File Contents\n\n")

	for _, file := range files {
		b.WriteString(fmt.Sprintf("## %s\n\n", DisplayPath(file, root)))

		if err, failed := readErrs[file]; failed {
			b.WriteString(fmt.Sprintf("Error reading file: %v\n\n", err))
			continue
		}

		lang := strings.TrimPrefix(filepath.Ext(file), ".")
		b.WriteString(delim + lang + "\n")
		body := contents[file]
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(delim + "\n\n")
	}

	doc.Content = b.String()
	return doc
}

// DisplayPath shortens path relative to root for headers and listings,
// falling back to the absolute path when no usable root is set.
func DisplayPath(path, root string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// chooseDelimiter returns the first candidate fence that none of the given
// bodies contain, or the longest candidate if all are taken.
func chooseDelimiter(bodies []string) string {
	used := make(map[string]bool)
	for _, body := range bodies {
		for _, delim := range fenceDelimiters {
			if strings.Contains(body, delim) {
				used[delim] = true
			}
		}
	}
	for _, delim := range fenceDelimiters {
		if !used[delim] {
			return delim
		}
	}
	return fenceDelimiters[len(fenceDelimiters)-1]
}
