package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/matlex"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPipelineContent(t *testing.T) {
	p, err := NewPipeline(config.NewConfig())
	require.NoError(t, err)

	res := p.Content(matlex.DialectMatlab, []byte("function y = f(x)\ny = x;\nend\n"))

	assert.Equal(t, matlex.DialectMatlab, res.Dialect)
	assert.True(t, matlex.ValidateSpans(res.Spans, 0, len(res.Content)))
	assert.Equal(t, 4, res.LineCount)
	assert.Equal(t, []int{0}, res.Headers())
}

func TestPipelineFileDetectsDialect(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "solver.jl", "function f(x)\n    x + 1\nend\n")

	p, err := NewPipeline(config.NewConfig())
	require.NoError(t, err)

	res, err := p.File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, matlex.DialectJulia, res.Dialect)
	assert.Equal(t, path, res.Path)
	assert.NotEmpty(t, res.Spans)
}

func TestPipelineForcedDialect(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "script.m", "x = 1;\n")

	cfg := config.NewConfig()
	cfg.Dialect = "scilab"
	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	res, err := p.File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, matlex.DialectScilab, res.Dialect)
}

func TestPipelineInvalidDialect(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Dialect = "fortran"
	_, err := NewPipeline(cfg)
	assert.Error(t, err)
}

func TestPipelineMissingFile(t *testing.T) {
	p, err := NewPipeline(config.NewConfig())
	require.NoError(t, err)

	_, err = p.File(context.Background(), filepath.Join(t.TempDir(), "absent.m"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPipelineMarkdown(t *testing.T) {
	dir := t.TempDir()
	doc := "# Notes\n\n```matlab\nif x\nend\n```\n\n```python\npass\n```\n"
	path := writeFile(t, dir, "notes.md", doc)

	cfg := config.NewConfig()
	cfg.Markdown = true
	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	res, err := p.File(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, matlex.DialectMatlab, res.Blocks[0].Dialect)
	assert.Equal(t, 3, res.Blocks[0].StartLine)
	assert.Positive(t, res.SpanCount())
}

func TestPipelineMarkdownDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plot.m", "plot(x)\n")

	p, err := NewPipeline(config.NewConfig())
	require.NoError(t, err)

	res, err := p.File(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, res.Blocks)
	assert.NotEmpty(t, res.Spans)
}

func TestPipelineCustomTables(t *testing.T) {
	dir := t.TempDir()
	tables := writeFile(t, dir, "tables.yaml", "matlab:\n  keywords: zork end\n")
	src := writeFile(t, dir, "script.m", "zork\nend\n")

	cfg := config.NewConfig()
	cfg.Dialect = "matlab"
	cfg.Tables = tables
	p, err := NewPipeline(cfg)
	require.NoError(t, err)

	res, err := p.File(context.Background(), src)
	require.NoError(t, err)
	require.NotEmpty(t, res.Spans)
	assert.Equal(t, matlex.TokKeyword, res.Spans[0].Kind)
}

func TestPipelineCancelledContext(t *testing.T) {
	p, err := NewPipeline(config.NewConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.File(ctx, "whatever.m")
	assert.ErrorIs(t, err, context.Canceled)
}
