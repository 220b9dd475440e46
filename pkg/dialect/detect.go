// Package dialect detects which MATLAB-family dialect a file is written in.
// Detection combines extension mapping, shebang and content heuristics, and
// go-enry's classifier for the ambiguous cases (notably ".m", which MATLAB,
// Octave, and Objective-C all claim).
package dialect

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

// byExtension maps unambiguous extensions to dialects.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byExtension = map[string]matlex.Dialect{
	".jl":      matlex.DialectJulia,
	".sci":     matlex.DialectScilab,
	".sce":     matlex.DialectScilab,
	".tst":     matlex.DialectScilab,
	".plt":     matlex.DialectGnuplot,
	".gp":      matlex.DialectGnuplot,
	".gpi":     matlex.DialectGnuplot,
	".gnuplot": matlex.DialectGnuplot,
	".oct":     matlex.DialectOctave,
}

// byFence maps Markdown fence info strings to dialects.
//
//nolint:gochecknoglobals // Read-only lookup table.
var byFence = map[string]matlex.Dialect{
	"matlab":     matlex.DialectMatlab,
	"octave":     matlex.DialectOctave,
	"scilab":     matlex.DialectScilab,
	"gnuplot":    matlex.DialectGnuplot,
	"julia":      matlex.DialectJulia,
	"julia-repl": matlex.DialectJulia,
}

// Detect determines the dialect of a file from its path and content.
// The overrides map (extension with leading dot to dialect name) wins over
// everything; ok is false when the file does not look like any dialect.
func Detect(path string, content []byte, overrides map[string]string) (matlex.Dialect, bool) {
	ext := strings.ToLower(filepath.Ext(path))

	if name, found := overrides[ext]; found {
		if d, err := matlex.ParseDialect(name); err == nil {
			return d, true
		}
	}

	if d, found := byExtension[ext]; found {
		return d, true
	}

	if ext == ".m" {
		return detectDotM(content), true
	}

	return matlex.DialectMatlab, false
}

// FromFence maps a Markdown fence info string to a dialect.
func FromFence(info string) (matlex.Dialect, bool) {
	lang := strings.ToLower(strings.TrimSpace(info))
	if i := strings.IndexAny(lang, " \t"); i >= 0 {
		lang = lang[:i]
	}
	d, found := byFence[lang]
	return d, found
}

// detectDotM decides between MATLAB and Octave for a ".m" file.
// Octave-only surface syntax decides fast; otherwise the enry classifier
// breaks the tie, defaulting to MATLAB.
func detectDotM(content []byte) matlex.Dialect {
	if len(content) == 0 {
		return matlex.DialectMatlab
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if strings.EqualFold(lang, "Octave") || strings.EqualFold(lang, "Shell") {
			return matlex.DialectOctave
		}
	}

	if d, found := detectByPattern(content); found {
		return d
	}

	candidates := []string{"MATLAB", "Octave"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe &&
		strings.EqualFold(lang, "Octave") {
		return matlex.DialectOctave
	}

	return matlex.DialectMatlab
}

// detectByPattern checks for syntax only one of the two dialects accepts.
func detectByPattern(content []byte) (matlex.Dialect, bool) {
	for _, line := range bytes.Split(content, []byte("\n")) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 {
			continue
		}

		switch {
		case bytes.HasPrefix(trimmed, []byte("%!")):
			// Octave test/demo section.
			return matlex.DialectOctave, true
		case trimmed[0] == '#':
			// Hash comments (and #{ blocks) are Octave-only in .m files.
			return matlex.DialectOctave, true
		case startsWithWord(trimmed, "endfunction"), startsWithWord(trimmed, "endif"),
			startsWithWord(trimmed, "endwhile"), startsWithWord(trimmed, "endfor"),
			startsWithWord(trimmed, "unwind_protect"):
			return matlex.DialectOctave, true
		case startsWithWord(trimmed, "classdef"):
			// classdef files are overwhelmingly MATLAB in practice.
			return matlex.DialectMatlab, true
		}
	}
	return matlex.DialectMatlab, false
}

// startsWithWord reports whether line begins with the word followed by a
// non-word byte or end of line.
func startsWithWord(line []byte, word string) bool {
	if !bytes.HasPrefix(line, []byte(word)) {
		return false
	}
	if len(line) == len(word) {
		return true
	}
	next := line[len(word)]
	return !(next == '_' || ('a' <= next && next <= 'z') || ('A' <= next && next <= 'Z') ||
		('0' <= next && next <= '9'))
}

// Extensions returns the extensions scanned by default, including ".m".
func Extensions() []string {
	exts := make([]string, 0, len(byExtension)+1)
	for ext := range byExtension {
		exts = append(exts, ext)
	}
	exts = append(exts, ".m")
	return exts
}

// ExtensionsFor returns the sorted extensions mapped to a dialect. MATLAB
// and Octave both list ".m" since that extension is resolved per file.
func ExtensionsFor(d matlex.Dialect) []string {
	var exts []string
	for ext, mapped := range byExtension {
		if mapped == d {
			exts = append(exts, ext)
		}
	}
	if d == matlex.DialectMatlab || d == matlex.DialectOctave {
		exts = append(exts, ".m")
	}
	sort.Strings(exts)
	return exts
}
