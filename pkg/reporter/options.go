package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomatlex/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable (JSON).
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}

// displayPath shortens a path relative to the working directory when the
// result stays inside it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") || len(rel) >= len(path) {
		return path
	}
	return rel
}
