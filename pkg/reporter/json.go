package reporter

import (
	"bufio"
	"context"
	"encoding/json"

	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile represents a single file's scan result.
type JSONFile struct {
	Path      string     `json:"path"`
	Dialect   string     `json:"dialect,omitempty"`
	StartLine int        `json:"startLine,omitempty"`
	Spans     []JSONSpan `json:"spans,omitempty"`
	Folds     []JSONFold `json:"folds,omitempty"`
	Blocks    []JSONFile `json:"blocks,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// JSONSpan is one classified byte range.
type JSONSpan struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// JSONFold is the fold data of one line.
type JSONFold struct {
	Line   int  `json:"line"`
	Level  int  `json:"level"`
	Next   int  `json:"next"`
	Header bool `json:"header,omitempty"`
	Blank  bool `json:"blank,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesProcessed  int            `json:"filesProcessed"`
	FilesErrored    int            `json:"filesErrored"`
	Bytes           int            `json:"bytes"`
	Lines           int            `json:"lines"`
	Spans           int            `json:"spans"`
	FoldHeaders     int            `json:"foldHeaders"`
	ByDialect       map[string]int `json:"byDialect,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(r.buildOutput(result))
}

func (r *JSONReporter) buildOutput(result *runner.Result) JSONOutput {
	output := JSONOutput{
		Version: "1",
		Files:   []JSONFile{},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		if file.Error != nil {
			output.Files = append(output.Files, JSONFile{
				Path:  r.opts.displayPath(file.Path),
				Error: file.Error.Error(),
			})
			continue
		}
		if file.Result == nil {
			continue
		}
		output.Files = append(output.Files, r.buildFile(file.Result))
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesErrored:    result.Stats.FilesErrored,
		Bytes:           result.Stats.BytesTotal,
		Lines:           result.Stats.LinesTotal,
		Spans:           result.Stats.SpansTotal,
		FoldHeaders:     result.Stats.HeadersTotal,
		ByDialect:       result.Stats.FilesByDialect,
	}
	return output
}

func (r *JSONReporter) buildFile(res *scan.Result) JSONFile {
	file := JSONFile{
		Path:      r.opts.displayPath(res.Path),
		StartLine: res.StartLine,
	}
	if len(res.Blocks) > 0 {
		for _, block := range res.Blocks {
			file.Blocks = append(file.Blocks, r.buildFile(block))
		}
		return file
	}

	file.Dialect = res.Dialect.String()
	file.Spans = make([]JSONSpan, len(res.Spans))
	for i, span := range res.Spans {
		file.Spans[i] = JSONSpan{
			Kind:  span.Kind.String(),
			Start: span.Start,
			End:   span.End,
		}
	}
	file.Folds = make([]JSONFold, len(res.Folds))
	for i, lf := range res.Folds {
		file.Folds[i] = JSONFold{
			Line:   lf.Line,
			Level:  lf.Level.Level,
			Next:   lf.Level.Next,
			Header: lf.Level.Header,
			Blank:  lf.Level.Blank,
		}
	}
	return file
}
