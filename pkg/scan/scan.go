// Package scan runs the two-pass engine over single inputs: tokenize, then
// fold. It resolves the dialect and keyword tables for each input and, when
// enabled, scans fenced code blocks inside Markdown documents.
package scan

import "github.com/yaklabco/gomatlex/pkg/matlex"

// LineFold is the fold data of one line, paired with its line number for
// reporting.
type LineFold struct {
	Line  int              `json:"line"`
	Level matlex.FoldLevel `json:"level"`
}

// Result is the scan outcome for one input.
type Result struct {
	// Path is the scanned file path; for Markdown blocks it is the path of
	// the enclosing document.
	Path string `json:"path"`

	// Dialect is the dialect the input was scanned as.
	Dialect matlex.Dialect `json:"dialect"`

	// Content is the scanned source.
	Content []byte `json:"-"`

	// Spans is the classified span stream covering Content.
	Spans []matlex.Span `json:"spans"`

	// Folds holds one entry per line.
	Folds []LineFold `json:"folds"`

	// LineCount is the number of lines in Content.
	LineCount int `json:"line_count"`

	// StartLine offsets line numbers when the input is a Markdown block.
	StartLine int `json:"start_line,omitempty"`

	// Blocks holds nested results when the input is a Markdown document.
	Blocks []*Result `json:"blocks,omitempty"`
}

// Headers returns the lines that open a fold region.
func (r *Result) Headers() []int {
	var headers []int
	for _, lf := range r.Folds {
		if lf.Level.Header {
			headers = append(headers, lf.Line)
		}
	}
	return headers
}

// SpanCount returns the number of spans including nested block results.
func (r *Result) SpanCount() int {
	n := len(r.Spans)
	for _, b := range r.Blocks {
		n += b.SpanCount()
	}
	return n
}
