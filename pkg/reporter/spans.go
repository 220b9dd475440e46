package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomatlex/internal/ui/pretty"
	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

// maxLexemeDisplay bounds the quoted lexeme column in span listings.
const maxLexemeDisplay = 40

// SpansReporter lists every classified span, one per line. The format is
// grep-friendly: path:line:col, the kind name, and the quoted lexeme.
type SpansReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSpansReporter creates a new span-listing reporter.
func NewSpansReporter(opts Options) *SpansReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SpansReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SpansReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: error: %v\n", r.opts.displayPath(file.Path), file.Error)
			continue
		}
		if file.Result == nil {
			continue
		}
		if len(file.Result.Blocks) > 0 {
			for _, block := range file.Result.Blocks {
				r.listSpans(block)
			}
			continue
		}
		r.listSpans(file.Result)
	}
	return nil
}

func (r *SpansReporter) listSpans(res *scan.Result) {
	path := r.opts.displayPath(res.Path)
	index := newLineIndex(res.Content)

	for _, span := range res.Spans {
		line, col := index.locate(span.Start)
		// Block line numbers are document-relative.
		line += res.StartLine

		lexeme := string(span.Text(res.Content))
		if len(lexeme) > maxLexemeDisplay {
			lexeme = lexeme[:maxLexemeDisplay] + "..."
		}

		fmt.Fprintf(r.bw, "%s\t%s\t%q\n",
			r.styles.Location.Render(fmt.Sprintf("%s:%d:%d", path, line, col)),
			r.styles.ForKind(span.Kind).Render(span.Kind.String()),
			lexeme,
		)
	}
}
