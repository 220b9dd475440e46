package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomatlex/pkg/config"
)

// envVarPrefix is the prefix for all gomatlex environment variables.
const envVarPrefix = "GOMATLEX_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DIALECT":      {field: "dialect", typ: envTypeString},
	"FORMAT":       {field: "format", typ: envTypeString},
	"COLOR":        {field: "color", typ: envTypeString},
	"TABLES":       {field: "tables", typ: envTypeString},
	"JOBS":         {field: "jobs", typ: envTypeInt},
	"FOLD_COMMENT": {field: "fold.comment", typ: envTypeBool},
	"FOLD_COMPACT": {field: "fold.compact", typ: envTypeBool},
	"MARKDOWN":     {field: "markdown", typ: envTypeBool},
	"IGNORE":       {field: "ignore", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMATLEX_ (e.g., GOMATLEX_DIALECT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "dialect":
		cfg.Dialect = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "tables":
		cfg.Tables = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fold.comment":
		cfg.Fold.Comment = &value
	case "fold.compact":
		cfg.Fold.Compact = &value
	case "markdown":
		cfg.Markdown = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMATLEX_DIALECT":      "Force a dialect: matlab, octave, scilab, gnuplot, julia",
		"GOMATLEX_FORMAT":       "Output format: text, spans, json, or outline",
		"GOMATLEX_COLOR":        "Color mode: auto, always, or never",
		"GOMATLEX_TABLES":       "Path of a keyword-table file",
		"GOMATLEX_JOBS":         "Number of parallel workers (0 = auto)",
		"GOMATLEX_FOLD_COMMENT": "Fold comments too: true or false",
		"GOMATLEX_FOLD_COMPACT": "Attach blank lines to fold regions: true or false",
		"GOMATLEX_MARKDOWN":     "Scan fenced code in Markdown files: true or false",
		"GOMATLEX_IGNORE":       "Comma-separated list of ignore patterns",
	}
}
