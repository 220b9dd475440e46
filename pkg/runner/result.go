package runner

import "github.com/yaklabco/gomatlex/pkg/scan"

// FileOutcome wraps a scan result with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is the scan result for this file. Nil when the file could
	// not be processed.
	Result *scan.Result

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully scanned.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// BytesTotal is the total scanned content size.
	BytesTotal int

	// LinesTotal is the total number of lines scanned.
	LinesTotal int

	// SpansTotal is the total number of classified spans produced.
	SpansTotal int

	// HeadersTotal is the total number of fold-region headers found.
	HeadersTotal int

	// FilesByDialect maps dialect names to scanned file counts.
	FilesByDialect map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasErrors reports whether any file failed to scan.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FilesByDialect: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.accumulateScan(outcome.Result, true)
}

func (r *Result) accumulateScan(res *scan.Result, topLevel bool) {
	r.Stats.BytesTotal += len(res.Content)
	r.Stats.LinesTotal += res.LineCount
	r.Stats.SpansTotal += len(res.Spans)
	r.Stats.HeadersTotal += len(res.Headers())

	// Markdown documents have no dialect of their own; their blocks
	// contribute spans and lines under the block dialect.
	if res.LineCount > 0 && (!topLevel || len(res.Blocks) == 0) {
		r.Stats.FilesByDialect[res.Dialect.String()]++
	}
	for _, b := range res.Blocks {
		r.accumulateScan(b, false)
	}
}
