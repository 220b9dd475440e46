// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldDialect = "dialect"
	FieldFormat  = "format"
	FieldJobs    = "jobs"
	FieldTables  = "tables"

	// Scan statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldBytes           = "bytes"
	FieldLines           = "lines"
	FieldSpans           = "spans"
	FieldRegions         = "regions"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
