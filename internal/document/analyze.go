package document

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"ctxcat/model"
)

// Analyze re-parses a composed document and reports its shape: byte length,
// the number of fenced code blocks the Markdown actually contains, and an
// approximate LLM token count.
func Analyze(content string) model.Stats {
	return model.Stats{
		Bytes:      len(content),
		CodeBlocks: countFencedBlocks([]byte(content)),
		Tokens:     countTokens(content),
	}
}

// countFencedBlocks walks the Markdown AST and counts fenced code blocks.
func countFencedBlocks(source []byte) int {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	count := 0
	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := node.(*ast.FencedCodeBlock); ok {
			count++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	}
	if err := ast.Walk(root, walker); err != nil {
		return 0
	}
	return count
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// countTokens estimates the document's token count with the cl100k_base
// encoding. When the encoding cannot be loaded (e.g. no cached BPE data and
// no network), it falls back to the rough bytes/4 heuristic.
func countTokens(content string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return len(content) / 4
	}
	return len(encoding.Encode(content, nil, nil))
}
