// Package runner provides multi-file scan orchestration: discovery of
// source files, a bounded worker pool, and deterministic result assembly.
package runner

import (
	"strings"

	"github.com/yaklabco/gomatlex/pkg/config"
	"github.com/yaklabco/gomatlex/pkg/dialect"
)

// Options configures a scan run.
type Options struct {
	// Paths are the files and directories to scan. Directories are walked
	// recursively. Empty means the working directory.
	Paths []string

	// WorkingDir is the base for relative paths. Empty means the current
	// directory.
	WorkingDir string

	// Extensions limits discovery to files with these extensions. Empty
	// means the dialect extension table plus any configured overrides.
	Extensions []string

	// IncludeGlobs filters discovered files; empty means include all.
	IncludeGlobs []string

	// ExcludeGlobs removes matching files from the run.
	ExcludeGlobs []string

	// FollowSymlinks walks through symlinked directories.
	FollowSymlinks bool

	// Jobs is the worker count. Zero or negative means one worker per CPU.
	Jobs int

	// Config is the resolved configuration. Nil means defaults.
	Config *config.Config
}

// effectiveExtensions returns the normalized extension filter for discovery.
// The built-in dialect extensions are the default, widened by configured
// extension overrides and by Markdown extensions when fence scanning is on.
func (o Options) effectiveExtensions() []string {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = dialect.Extensions()
		if o.Config != nil {
			for ext := range o.Config.Extensions {
				exts = append(exts, ext)
			}
			if o.Config.Markdown {
				exts = append(exts, ".md", ".markdown")
			}
		}
	}

	normalized := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.ToLower(strings.TrimSpace(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !seen[e] {
			seen[e] = true
			normalized = append(normalized, e)
		}
	}
	return normalized
}

// effectiveExcludes merges the explicit exclude globs with the configured
// ignore patterns.
func (o Options) effectiveExcludes() []string {
	excludes := o.ExcludeGlobs
	if o.Config != nil && len(o.Config.Ignore) > 0 {
		excludes = append(append([]string{}, excludes...), o.Config.Ignore...)
	}
	return excludes
}

// effectivePaths returns the input paths, defaulting to the working
// directory.
func (o Options) effectivePaths() []string {
	if len(o.Paths) > 0 {
		return o.Paths
	}
	return []string{"."}
}
