// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Token styles, indexed through ForKind.
	Comment   lipgloss.Style
	Keyword   lipgloss.Style
	Attribute lipgloss.Style
	Function  lipgloss.Style
	Number    lipgloss.Style
	Operator  lipgloss.Style
	String    lipgloss.Style
	Regex     lipgloss.Style
	Command   lipgloss.Style
	Callback  lipgloss.Style
	Variable  lipgloss.Style
	Plain     lipgloss.Style

	// File and outline components
	FilePath     lipgloss.Style
	Location     lipgloss.Style
	DialectTag   lipgloss.Style
	OutlineGuide lipgloss.Style
	FoldHeader   lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Keyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Attribute: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Function:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Operator:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		String:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Regex:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Underline(true),
		Command:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Callback:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),
		Variable:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Plain:     lipgloss.NewStyle(),

		FilePath:     lipgloss.NewStyle().Bold(true),
		Location:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		DialectTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		OutlineGuide: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FoldHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Comment:      plain,
		Keyword:      plain,
		Attribute:    plain,
		Function:     plain,
		Number:       plain,
		Operator:     plain,
		String:       plain,
		Regex:        plain,
		Command:      plain,
		Callback:     plain,
		Variable:     plain,
		Plain:        plain,
		FilePath:     plain,
		Location:     plain,
		DialectTag:   plain,
		OutlineGuide: plain,
		FoldHeader:   plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// ForKind maps a token kind to its display style.
func (s *Styles) ForKind(kind matlex.TokenKind) lipgloss.Style {
	switch kind {
	case matlex.TokComment, matlex.TokCommentBlock:
		return s.Comment
	case matlex.TokKeyword:
		return s.Keyword
	case matlex.TokAttribute:
		return s.Attribute
	case matlex.TokInternalCommand, matlex.TokCommand:
		return s.Command
	case matlex.TokFunction, matlex.TokFunction1, matlex.TokFunction2,
		matlex.TokFunction3, matlex.TokFunction4:
		return s.Function
	case matlex.TokNumber, matlex.TokHexNumber:
		return s.Number
	case matlex.TokOperator:
		return s.Operator
	case matlex.TokString, matlex.TokDoubleQuoteString, matlex.TokRawString,
		matlex.TokTripleString, matlex.TokBacktick:
		return s.String
	case matlex.TokRegex:
		return s.Regex
	case matlex.TokCallback:
		return s.Callback
	case matlex.TokVariable:
		return s.Variable
	default:
		return s.Plain
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
