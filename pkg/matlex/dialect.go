// Package matlex implements an incremental lexer and fold engine for the
// MATLAB family of scripting languages (MATLAB, Octave, Scilab, Gnuplot,
// Julia). It provides:
// - Lexer: a re-entrant, range-limited tokenizer producing classified spans
// - Folder: a per-line fold-level pass driven by the computed token styles
// - Document: the text/style store both passes read from and write to
//
// Both passes persist per-line state (a comment-nesting cookie for the lexer,
// a fold level for the folder) so a scan can resume at any line boundary
// without reprocessing the whole document.
package matlex

import "fmt"

// Dialect selects which language variant's comment, string, and operator
// rules apply. It is fixed for the lifetime of a scan.
type Dialect uint8

const (
	DialectMatlab Dialect = iota
	DialectOctave
	DialectScilab
	DialectGnuplot
	DialectJulia
)

// String returns the lowercase dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectMatlab:
		return "matlab"
	case DialectOctave:
		return "octave"
	case DialectScilab:
		return "scilab"
	case DialectGnuplot:
		return "gnuplot"
	case DialectJulia:
		return "julia"
	default:
		return "unknown"
	}
}

// ParseDialect converts a dialect name to a Dialect value.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "matlab":
		return DialectMatlab, nil
	case "octave":
		return DialectOctave, nil
	case "scilab":
		return DialectScilab, nil
	case "gnuplot":
		return DialectGnuplot, nil
	case "julia":
		return DialectJulia, nil
	default:
		return DialectMatlab, fmt.Errorf("unknown dialect %q", s)
	}
}

// Dialects returns all supported dialects in declaration order.
func Dialects() []Dialect {
	return []Dialect{DialectMatlab, DialectOctave, DialectScilab, DialectGnuplot, DialectJulia}
}

// isMatlabOctave reports whether d uses the shared MATLAB/Octave rules
// (nested block comments, shell command lines, classdef folding).
func isMatlabOctave(d Dialect) bool {
	return d == DialectMatlab || d == DialectOctave
}
