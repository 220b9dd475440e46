// Package reporter formats scan results for terminals and machine
// consumers: highlighted source, span listings, JSON, and fold outlines.
package reporter

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/runner"
)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}

	switch format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatSpans:
		return NewSpansReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	case config.FormatOutline:
		return NewOutlineReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex struct {
	starts []int
}

func newLineIndex(content []byte) *lineIndex {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// locate returns the 1-based line and column of a byte offset.
func (li *lineIndex) locate(pos int) (line, col int) {
	i := sort.Search(len(li.starts), func(n int) bool {
		return li.starts[n] > pos
	}) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, pos - li.starts[i] + 1
}

// lineText returns the text of a 0-based line without its terminator.
func (li *lineIndex) lineText(content []byte, line int) string {
	if line < 0 || line >= len(li.starts) {
		return ""
	}
	start := li.starts[line]
	end := len(content)
	if line+1 < len(li.starts) {
		end = li.starts[line+1] - 1
	}
	for end > start && content[end-1] == '\r' {
		end--
	}
	return string(content[start:end])
}
