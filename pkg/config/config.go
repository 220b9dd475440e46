// Package config defines core configuration types for gomatlex.
// These types are pure data structures with no dependency on the config
// loader or any scanning package.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatSpans   OutputFormat = "spans"
	FormatJSON    OutputFormat = "json"
	FormatOutline OutputFormat = "outline"
)

// ColorMode controls when styled terminal output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// FoldConfig holds the folding options persisted in config files. Pointers
// distinguish "not set" from an explicit false so later sources can override
// in either direction.
type FoldConfig struct {
	// Comment folds block comments, comment runs, and triple-quoted
	// strings in addition to code structure. Defaults to off.
	Comment *bool `mapstructure:"comment" yaml:"comment,omitempty"`

	// Compact attaches blank lines to the preceding fold region.
	// Defaults to on.
	Compact *bool `mapstructure:"compact" yaml:"compact,omitempty"`
}

// CommentOn resolves the comment-folding option against its default.
func (f FoldConfig) CommentOn() bool { return f.Comment != nil && *f.Comment }

// CompactOn resolves the compact option against its default.
func (f FoldConfig) CompactOn() bool { return f.Compact == nil || *f.Compact }

// Config is the root configuration structure for gomatlex.
type Config struct {
	// Dialect forces a dialect for all inputs; empty means detect per file.
	Dialect string `mapstructure:"dialect" yaml:"dialect"`

	// Fold configures the structural folding pass.
	Fold FoldConfig `mapstructure:"fold" yaml:"fold"`

	// Tables is the path of a keyword-table file overriding the embedded
	// defaults. Empty means use the embedded tables.
	Tables string `mapstructure:"tables" yaml:"tables"`

	// Extensions maps file extensions (with leading dot) to dialect names,
	// overriding the built-in extension table and content detection.
	Extensions map[string]string `mapstructure:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Markdown scans fenced code blocks inside Markdown files instead of
	// skipping them.
	Markdown bool `mapstructure:"markdown" yaml:"markdown"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Color controls styled output.
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// Output is a file path to write results to; empty means stdout.
	Output string `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialect:    "",
		Extensions: make(map[string]string),
		Format:     FormatText,
		Color:      ColorAuto,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
