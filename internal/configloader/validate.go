package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/matlex"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "extensions..m").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Dialect != "" {
		if _, err := matlex.ParseDialect(cfg.Dialect); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "dialect",
				Value:   cfg.Dialect,
				Message: err.Error(),
			})
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, spans, json, outline", cfg.Format),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks the extension override map.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for ext, dialect := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "extensions." + ext,
				Value:   ext,
				Message: "extension must start with a dot",
			})
		}
		if _, err := matlex.ParseDialect(dialect); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "extensions." + ext,
				Value:   dialect,
				Message: err.Error(),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
