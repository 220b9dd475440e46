package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomatlex/pkg/matlex"
)

func TestTables_EmbeddedDefaults(t *testing.T) {
	tests := []struct {
		dialect matlex.Dialect
		keyword string
	}{
		{matlex.DialectMatlab, "classdef"},
		{matlex.DialectOctave, "unwind_protect"},
		{matlex.DialectScilab, "select"},
		{matlex.DialectGnuplot, "plot"},
		{matlex.DialectJulia, "struct"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			tables := Tables(tt.dialect)
			require.NotNil(t, tables)
			assert.True(t, tables.Keywords.Contains(tt.keyword),
				"keyword %q missing", tt.keyword)
		})
	}
}

func TestTables_SharedAcrossCalls(t *testing.T) {
	assert.Same(t, Tables(matlex.DialectMatlab), Tables(matlex.DialectMatlab))
}

func TestTables_FunctionMarkersStripped(t *testing.T) {
	tables := Tables(matlex.DialectMatlab)
	assert.True(t, tables.Function1.Contains("zeros"))
	assert.False(t, tables.Function1.Contains("zeros("))
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tables, err := Parse([]byte("matlab:\n  keywords: if end\n"))
		require.NoError(t, err)
		require.Contains(t, tables, "matlab")
		assert.True(t, tables["matlab"].Keywords.Contains("if"))
	})

	t.Run("unknown dialect", func(t *testing.T) {
		_, err := Parse([]byte("fortran:\n  keywords: do\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte(":\n  - ["))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte("julia:\n  keywords: end if\n"), 0o644))

		tables, err := LoadFile(path)
		require.NoError(t, err)
		assert.True(t, tables["julia"].Keywords.Contains("end"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
