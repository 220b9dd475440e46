package config

// IsValid reports whether the output format is one of the known formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatSpans, FormatJSON, FormatOutline:
		return true
	default:
		return false
	}
}

// Formats returns the known output format names.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatSpans, FormatJSON, FormatOutline}
}

// IsValid reports whether the color mode is one of the known modes.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
