package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gomatlex/internal/ui/pretty"
	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

// OutlineReporter renders the fold structure of each file as an indented
// tree of header lines.
type OutlineReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewOutlineReporter creates a new outline reporter.
func NewOutlineReporter(opts Options) *OutlineReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &OutlineReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *OutlineReporter) Report(_ context.Context, result *runner.Result) (err error) {
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
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FilePath.Render(r.opts.displayPath(file.Path)))
		if len(file.Result.Blocks) > 0 {
			for _, block := range file.Result.Blocks {
				r.outline(block)
			}
			continue
		}
		r.outline(file.Result)
	}
	return nil
}

// outline writes one indented entry per fold header. Depth is the header
// line's own level so nested regions step in one unit at a time.
func (r *OutlineReporter) outline(res *scan.Result) {
	index := newLineIndex(res.Content)

	base := -1
	for _, lf := range res.Folds {
		if !lf.Level.Header {
			continue
		}
		if base < 0 || lf.Level.Level < base {
			base = lf.Level.Level
		}
	}

	for _, lf := range res.Folds {
		if !lf.Level.Header {
			continue
		}
		depth := lf.Level.Level - base
		if depth < 0 {
			depth = 0
		}

		text := strings.TrimSpace(index.lineText(res.Content, lf.Line))
		fmt.Fprintf(r.bw, "  %s%s %s\n",
			r.styles.OutlineGuide.Render(strings.Repeat("| ", depth)),
			r.styles.Location.Render(fmt.Sprintf("%d:", lf.Line+res.StartLine+1)),
			r.styles.FoldHeader.Render(text),
		)
	}
}
