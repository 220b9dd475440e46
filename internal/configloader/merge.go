package configloader

import "github.com/yaklabco/gomatlex/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer options: override overwrites base if override is non-nil
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Dialect != "" {
		result.Dialect = override.Dialect
	}
	if override.Tables != "" {
		result.Tables = override.Tables
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	// Markdown cannot be unset by a later source; false is its zero value.
	if override.Markdown {
		result.Markdown = override.Markdown
	}

	if override.Fold.Comment != nil {
		result.Fold.Comment = override.Fold.Comment
	}
	if override.Fold.Compact != nil {
		result.Fold.Compact = override.Fold.Compact
	}

	result.Extensions = mergeExtensions(base.Extensions, override.Extensions)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeExtensions performs a deep merge of extension overrides.
func mergeExtensions(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]string, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		result[key] = val
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
