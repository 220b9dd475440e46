package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomatlex/pkg/config"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x = 1;\n"), 0o644))
	return path
}

func discover(t *testing.T, opts Options) []string {
	t.Helper()
	files, err := Discover(context.Background(), opts)
	require.NoError(t, err)
	return files
}

func TestDiscoverByExtension(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.m")
	b := touch(t, dir, "b.jl")
	touch(t, dir, "c.txt")
	touch(t, dir, "d.go")

	files := discover(t, Options{WorkingDir: dir})
	assert.Equal(t, []string{a, b}, files)
}

func TestDiscoverSortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, dir, "b.m")
	a := touch(t, dir, "a.m")

	files := discover(t, Options{
		WorkingDir: dir,
		Paths:      []string{".", "a.m", "b.m"},
	})
	assert.Equal(t, []string{a, b}, files)
}

func TestDiscoverSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	keep := touch(t, dir, "keep.m")
	touch(t, dir, ".hidden.m")
	touch(t, dir, ".cache/deep.m")

	files := discover(t, Options{WorkingDir: dir})
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := touch(t, dir, "src/keep.m")
	touch(t, dir, "vendor/dep.m")
	touch(t, dir, "src/gen_tables.m")

	files := discover(t, Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "gen_*.m"},
	})
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverIncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := touch(t, dir, "src/solver.m")
	touch(t, dir, "examples/demo.m")

	files := discover(t, Options{
		WorkingDir:   dir,
		IncludeGlobs: []string{"src/**"},
	})
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	keep := touch(t, dir, "model.mat")
	touch(t, dir, "a.m")

	files := discover(t, Options{
		WorkingDir: dir,
		Extensions: []string{"mat"},
	})
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverConfigExtensionOverrides(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.m")
	b := touch(t, dir, "b.oct2")

	cfg := config.NewConfig()
	cfg.Extensions[".oct2"] = "octave"

	files := discover(t, Options{WorkingDir: dir, Config: cfg})
	assert.Equal(t, []string{a, b}, files)
}

func TestDiscoverMarkdownOnlyWhenEnabled(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.m")
	md := touch(t, dir, "readme.md")

	files := discover(t, Options{WorkingDir: dir})
	assert.Equal(t, []string{a}, files)

	cfg := config.NewConfig()
	cfg.Markdown = true
	files = discover(t, Options{WorkingDir: dir, Config: cfg})
	assert.Equal(t, []string{a, md}, files)
}

func TestDiscoverSymlinkedDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	target := t.TempDir()
	inside := touch(t, target, "linked.m")

	dir := t.TempDir()
	direct := touch(t, dir, "direct.m")
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	files := discover(t, Options{WorkingDir: dir})
	assert.Equal(t, []string{direct}, files)

	files = discover(t, Options{WorkingDir: dir, FollowSymlinks: true})
	assert.ElementsMatch(t, []string{direct, inside}, files)
}

func TestDiscoverMissingPathFails(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope"},
	})
	assert.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	cases := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"a.m", "*.m", true},
		{"src/a.m", "*.m", true},
		{"src/a.m", "src/*.m", true},
		{"src/deep/a.m", "src/**", true},
		{"src/deep/a.m", "**/deep", true},
		{"vendor/a.m", "vendor/**", true},
		{"vendored/a.m", "vendor/**", false},
		{"a.jl", "*.m", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matchGlob(tc.path, tc.pattern),
			"path %q pattern %q", tc.path, tc.pattern)
	}
}

func TestEffectiveExtensionsNormalized(t *testing.T) {
	opts := Options{Extensions: []string{"M", ".JL", " .sci ", "", ".m"}}
	assert.Equal(t, []string{".m", ".jl", ".sci"}, opts.effectiveExtensions())
}
