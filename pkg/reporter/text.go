package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gomatlex/internal/ui/pretty"
	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

// defaultTermWidth is used when the output is not a terminal.
const defaultTermWidth = 80

// TextReporter renders highlighted source as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  terminalWidth(opts),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to scan."))
		}
		return nil
	}

	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
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
		r.renderFile(file.Result)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, summaryLine(r.styles, result.Stats))
	}
	return nil
}

func (r *TextReporter) renderFile(res *scan.Result) {
	if len(res.Blocks) > 0 {
		for i, block := range res.Blocks {
			if i > 0 {
				fmt.Fprintln(r.bw)
			}
			r.header(res.Path, block)
			r.renderSource(block)
		}
		return
	}
	r.header(res.Path, res)
	r.renderSource(res)
}

// header writes the file banner: path, dialect tag, and a rule spanning the
// terminal.
func (r *TextReporter) header(path string, res *scan.Result) {
	name := r.opts.displayPath(path)
	if res.StartLine > 0 {
		name = fmt.Sprintf("%s:%d", name, res.StartLine+1)
	}
	fmt.Fprintf(r.bw, "%s %s\n",
		r.styles.FilePath.Render(name),
		r.styles.DialectTag.Render("("+res.Dialect.String()+")"),
	)
	fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", r.width)))
}

// renderSource writes the content with each span styled by its kind. Spans
// can cross line boundaries, so each chunk is styled line segment by line
// segment to keep escape sequences from spanning newlines.
func (r *TextReporter) renderSource(res *scan.Result) {
	for _, span := range res.Spans {
		style := r.styles.ForKind(span.Kind)
		text := string(span.Text(res.Content))
		for {
			nl := strings.IndexByte(text, '\n')
			if nl < 0 {
				if text != "" {
					fmt.Fprint(r.bw, style.Render(text))
				}
				break
			}
			if nl > 0 {
				fmt.Fprint(r.bw, style.Render(text[:nl]))
			}
			fmt.Fprintln(r.bw)
			text = text[nl+1:]
		}
	}
	if len(res.Content) > 0 && res.Content[len(res.Content)-1] != '\n' {
		fmt.Fprintln(r.bw)
	}
}

// terminalWidth returns the width of the output terminal, bounded for
// readability, or the default for non-terminal writers.
func terminalWidth(opts Options) int {
	if f, ok := opts.Writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			if width > 120 {
				width = 120
			}
			return width
		}
	}
	return defaultTermWidth
}
