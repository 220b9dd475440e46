package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

func TestDetect_ByExtension(t *testing.T) {
	tests := []struct {
		path string
		want matlex.Dialect
	}{
		{"script.jl", matlex.DialectJulia},
		{"lib.sci", matlex.DialectScilab},
		{"run.sce", matlex.DialectScilab},
		{"plot.gp", matlex.DialectGnuplot},
		{"plot.PLT", matlex.DialectGnuplot},
		{"fn.oct", matlex.DialectOctave},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Detect(tt.path, nil, nil)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_UnknownExtension(t *testing.T) {
	_, ok := Detect("notes.txt", []byte("hello"), nil)
	assert.False(t, ok)
}

func TestDetect_OverrideWins(t *testing.T) {
	got, ok := Detect("script.m", []byte("# octave-ish content"),
		map[string]string{".m": "matlab"})
	assert.True(t, ok)
	assert.Equal(t, matlex.DialectMatlab, got)
}

func TestDetect_DotM(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    matlex.Dialect
	}{
		{"empty defaults to matlab", "", matlex.DialectMatlab},
		{"hash comment", "# comment\nx = 1\n", matlex.DialectOctave},
		{"test section", "%!test\n%! assert (true)\n", matlex.DialectOctave},
		{"endfunction", "function y = f(x)\ny = x;\nendfunction\n", matlex.DialectOctave},
		{"unwind_protect", "unwind_protect\nx = 1;\nunwind_protect_cleanup\nend_unwind_protect\n", matlex.DialectOctave},
		{"classdef", "classdef Point\nend\n", matlex.DialectMatlab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect("file.m", []byte(tt.content), nil)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromFence(t *testing.T) {
	tests := []struct {
		info  string
		want  matlex.Dialect
		found bool
	}{
		{"matlab", matlex.DialectMatlab, true},
		{"Octave", matlex.DialectOctave, true},
		{"julia-repl", matlex.DialectJulia, true},
		{"gnuplot title=x", matlex.DialectGnuplot, true},
		{"python", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, found := FromFence(tt.info)
		assert.Equal(t, tt.found, found, "info %q", tt.info)
		if tt.found {
			assert.Equal(t, tt.want, got, "info %q", tt.info)
		}
	}
}

func TestExtensions_IncludesDotM(t *testing.T) {
	assert.Contains(t, Extensions(), ".m")
	assert.Contains(t, Extensions(), ".jl")
}
