package reporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gomatlex/internal/ui/pretty"
	"github.com/yaklabco/gomatlex/pkg/runner"
)

// summaryLine formats the one-line run summary shown under text output.
func summaryLine(styles *pretty.Styles, stats runner.Stats) string {
	var b strings.Builder

	noun := "files"
	if stats.FilesProcessed == 1 {
		noun = "file"
	}
	b.WriteString(styles.SummaryTitle.Render(
		fmt.Sprintf("%d %s scanned", stats.FilesProcessed, noun)))
	b.WriteString(styles.SummaryValue.Render(
		fmt.Sprintf(" (%d spans, %d fold headers, %d lines)",
			stats.SpansTotal, stats.HeadersTotal, stats.LinesTotal)))

	if byDialect := dialectBreakdown(stats); byDialect != "" {
		b.WriteString(styles.Dim.Render(" " + byDialect))
	}

	if stats.FilesErrored > 0 {
		b.WriteString(" ")
		b.WriteString(styles.Failure.Render(
			fmt.Sprintf("%d errored", stats.FilesErrored)))
	}
	return b.String()
}

// dialectBreakdown renders the per-dialect file counts in a stable order.
func dialectBreakdown(stats runner.Stats) string {
	if len(stats.FilesByDialect) == 0 {
		return ""
	}
	names := make([]string, 0, len(stats.FilesByDialect))
	for name := range stats.FilesByDialect {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %d", name, stats.FilesByDialect[name]))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
