package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/runner"
	"github.com/yaklabco/gomatlex/pkg/scan"
)

func newRunner(t *testing.T, cfg *config.Config) *runner.Runner {
	t.Helper()
	pipeline, err := scan.NewPipeline(cfg)
	require.NoError(t, err)
	return runner.New(pipeline)
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	r := newRunner(t, nil)

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
	})

	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasErrors())
}

func TestRunScansTree(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"solve.m":       "classdef solve\nmethods\nend\nend\n",
		"sub/helper.jl": "function f(x)\n    x\nend\n",
		"plot.gp":       "plot sin(x)\n",
		"notes.txt":     "not source\n",
	})

	r := newRunner(t, nil)
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Zero(t, result.Stats.FilesErrored)
	assert.Positive(t, result.Stats.SpansTotal)
	assert.Equal(t, 1, result.Stats.FilesByDialect["matlab"])
	assert.Equal(t, 1, result.Stats.FilesByDialect["julia"])
	assert.Equal(t, 1, result.Stats.FilesByDialect["gnuplot"])

	// Path order is deterministic.
	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "plot.gp"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "solve.m"), result.Files[1].Path)
	assert.Equal(t, filepath.Join(dir, "sub", "helper.jl"), result.Files[2].Path)
}

func TestRunDeterministicAcrossJobs(t *testing.T) {
	dir := t.TempDir()
	files := make(map[string]string)
	for i := range 20 {
		files[filepath.Join("pkg", fmt.Sprintf("f%02d.m", i))] = "x = 1;\n"
	}
	writeTree(t, dir, files)

	r := newRunner(t, nil)

	single, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	require.Equal(t, len(single.Files), len(parallel.Files))
	for i := range single.Files {
		assert.Equal(t, single.Files[i].Path, parallel.Files[i].Path)
	}
	assert.Equal(t, single.Stats, parallel.Stats)
}

func TestRunHonorsIgnoreConfig(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.m":        "x = 1;\n",
		"build/gen.m":   "x = 1;\n",
		"legacy/old.m":  "x = 1;\n",
		"legacy/new.jl": "x = 1\n",
	})

	cfg := config.NewConfig()
	cfg.Ignore = []string{"build/**", "legacy/**"}
	r := newRunner(t, cfg)

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.m"), result.Files[0].Path)
}

func TestRunMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"guide.md": "# Guide\n\n```matlab\nif x\nend\n```\n",
	})

	cfg := config.NewConfig()
	cfg.Markdown = true
	r := newRunner(t, cfg)

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	require.NotNil(t, result.Files[0].Result)
	assert.Len(t, result.Files[0].Result.Blocks, 1)
	assert.Equal(t, 1, result.Stats.FilesByDialect["matlab"])
}

func TestRunSkipsMarkdownWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"guide.md": "# Guide\n",
		"x.m":      "x = 1;\n",
	})

	r := newRunner(t, nil)
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(dir, "x.m"), result.Files[0].Path)
}

func TestRunExplicitFilePaths(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.m": "x = 1;\n",
		"b.m": "y = 2;\n",
	})

	r := newRunner(t, nil)
	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"b.m"},
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(dir, "b.m"), result.Files[0].Path)
}

func TestRunMissingPath(t *testing.T) {
	r := newRunner(t, nil)
	_, err := r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"absent"},
	})
	assert.Error(t, err)
}

func TestRunCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.m": "x = 1;\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(t, nil)
	_, err := r.Run(ctx, runner.Options{WorkingDir: dir})
	assert.Error(t, err)
}

func TestRunStatsCountLines(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.m": "if x\ny = 1;\nend\n",
	})

	r := newRunner(t, nil)
	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Stats.LinesTotal)
	assert.Equal(t, len("if x\ny = 1;\nend\n"), result.Stats.BytesTotal)
	assert.Equal(t, 1, result.Stats.HeadersTotal)
}
