package config

import (
	"bytes"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Extensions == nil {
		cfg.Extensions = make(map[string]string)
	}

	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c

	if c.Fold.Comment != nil {
		v := *c.Fold.Comment
		clone.Fold.Comment = &v
	}
	if c.Fold.Compact != nil {
		v := *c.Fold.Compact
		clone.Fold.Compact = &v
	}
	if c.Extensions != nil {
		clone.Extensions = make(map[string]string, len(c.Extensions))
		maps.Copy(clone.Extensions, c.Extensions)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	return &clone
}

// Template returns a commented starter configuration file.
func Template() []byte {
	return []byte(`# gomatlex configuration
# See: https://github.com/yaklabco/gomatlex

# Force a dialect for all inputs: matlab, octave, scilab, gnuplot, julia.
# Leave empty to detect per file from extension and content.
dialect: ""

fold:
  # Fold block comments, comment runs, and triple-quoted strings too.
  comment: false
  # Attach blank lines to the preceding fold region.
  compact: true

# Keyword-table file overriding the embedded defaults.
# tables: ./tables.yaml

# Extension overrides (leading dot, dialect name).
# extensions:
#   ".m": octave

# Scan fenced code blocks inside Markdown files.
markdown: false

# Glob patterns to skip during discovery.
# ignore:
#   - "vendor/**"
`)
}
