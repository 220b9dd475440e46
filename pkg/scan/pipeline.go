package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/dialect"
	"github.com/yaklabco/gomatlex/pkg/extract"
	"github.com/yaklabco/gomatlex/pkg/fsutil"
	"github.com/yaklabco/gomatlex/pkg/matlex"
	"github.com/yaklabco/gomatlex/pkg/words"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")
)

// Pipeline scans files with a fixed configuration. It is safe for concurrent
// use once constructed.
type Pipeline struct {
	cfg       *config.Config
	forced    matlex.Dialect
	hasForced bool
	tables    map[string]*matlex.KeywordTables
	foldOpts  matlex.FoldOptions
	extractor *extract.Extractor
}

// NewPipeline builds a Pipeline from a configuration, loading custom keyword
// tables when one is configured.
func NewPipeline(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	p := &Pipeline{
		cfg: cfg,
		foldOpts: matlex.FoldOptions{
			Comment: cfg.Fold.CommentOn(),
			Compact: cfg.Fold.CompactOn(),
		},
		extractor: extract.New(),
	}

	if cfg.Dialect != "" {
		d, err := matlex.ParseDialect(cfg.Dialect)
		if err != nil {
			return nil, fmt.Errorf("resolve dialect: %w", err)
		}
		p.forced = d
		p.hasForced = true
	}

	if cfg.Tables != "" {
		tables, err := words.LoadFile(cfg.Tables)
		if err != nil {
			return nil, fmt.Errorf("load keyword tables: %w", err)
		}
		p.tables = tables
	}

	return p, nil
}

// File reads and scans one file. Markdown documents are scanned fence by
// fence when markdown scanning is enabled, otherwise they are scanned as
// plain source under the detected dialect.
func (p *Pipeline) File(ctx context.Context, path string) (*Result, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, fsutil.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case errors.Is(err, fsutil.ErrPermissionDenied):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		default:
			return nil, err
		}
	}

	if p.cfg.Markdown && isMarkdownPath(path) {
		return p.markdown(ctx, path, content)
	}

	d := p.dialectFor(path, content)
	res := p.Content(d, content)
	res.Path = path
	return res, nil
}

// Content scans raw source as the given dialect.
func (p *Pipeline) Content(d matlex.Dialect, content []byte) *Result {
	doc := matlex.NewDocument(content)
	spans := matlex.NewLexer(d, p.tablesFor(d)).TokenizeAll(doc)
	matlex.NewFolder(d, p.foldOpts).FoldAll(doc)

	folds := make([]LineFold, doc.LineCount())
	for line := range folds {
		folds[line] = LineFold{Line: line, Level: doc.FoldLevelAt(line)}
	}

	return &Result{
		Dialect:   d,
		Content:   content,
		Spans:     spans,
		Folds:     folds,
		LineCount: doc.LineCount(),
	}
}

func (p *Pipeline) markdown(ctx context.Context, path string, content []byte) (*Result, error) {
	blocks, err := p.extractor.Blocks(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	res := &Result{Path: path}
	for _, b := range blocks {
		d := b.Dialect
		if p.hasForced {
			d = p.forced
		}
		sub := p.Content(d, b.Content)
		sub.Path = path
		sub.StartLine = b.StartLine
		res.Blocks = append(res.Blocks, sub)
	}
	return res, nil
}

// dialectFor resolves the dialect of a file, honoring the forced dialect
// first and configured extension overrides after.
func (p *Pipeline) dialectFor(path string, content []byte) matlex.Dialect {
	if p.hasForced {
		return p.forced
	}
	d, _ := dialect.Detect(path, content, p.cfg.Extensions)
	return d
}

// tablesFor returns the keyword tables for a dialect, preferring a configured
// table file over the embedded defaults.
func (p *Pipeline) tablesFor(d matlex.Dialect) *matlex.KeywordTables {
	if p.tables != nil {
		if t, ok := p.tables[d.String()]; ok {
			return t
		}
	}
	return words.Tables(d)
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
