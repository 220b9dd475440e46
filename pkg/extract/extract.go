// Package extract pulls MATLAB-family code out of Markdown documents. It
// parses the document with goldmark and returns every fenced code block
// whose info string names a supported dialect, with enough position data to
// report results against the original file.
package extract

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomatlex/pkg/dialect"
	"github.com/yaklabco/gomatlex/pkg/matlex"
)

// Block is one extracted fenced code block.
type Block struct {
	// Dialect is the dialect named by the fence info string.
	Dialect matlex.Dialect

	// Info is the raw fence info string.
	Info string

	// Content is the code inside the fence, without the fence lines.
	Content []byte

	// StartLine is the zero-based line of the first code line in the
	// enclosing Markdown document.
	StartLine int
}

// Extractor parses Markdown and collects supported code fences.
type Extractor struct {
	md goldmark.Markdown
}

// New creates an Extractor. GFM tables and strikethrough are enabled so
// fences inside GFM constructs are still reached.
func New() *Extractor {
	return &Extractor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Blocks returns the supported code fences of a Markdown document, in
// document order.
func (e *Extractor) Blocks(ctx context.Context, content []byte) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract cancelled: %w", err)
	}

	reader := text.NewReader(content)
	doc := e.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var blocks []Block
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var info string
		if fence.Info != nil {
			info = string(fence.Info.Value(content))
		}
		d, supported := dialect.FromFence(info)
		if !supported {
			return ast.WalkContinue, nil
		}

		blocks = append(blocks, Block{
			Dialect:   d,
			Info:      info,
			Content:   fenceContent(fence, content),
			StartLine: fenceStartLine(fence, content),
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return blocks, nil
}

// fenceContent concatenates the code lines of a fence.
func fenceContent(fence *ast.FencedCodeBlock, content []byte) []byte {
	lines := fence.Lines()
	var out []byte
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, content[seg.Start:seg.Stop]...)
	}
	return out
}

// fenceStartLine returns the zero-based document line of the first code
// line, derived from its byte offset.
func fenceStartLine(fence *ast.FencedCodeBlock, content []byte) int {
	lines := fence.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	line := 0
	for i := 0; i < start && i < len(content); i++ {
		if content[i] == '\n' {
			line++
		}
	}
	return line
}
