package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// filter holds the resolved discovery criteria for one run.
type filter struct {
	workDir    string
	extensions []string
	includes   []string
	excludes   []string
}

// Discover finds source files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	f := filter{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		includes:   opts.IncludeGlobs,
		excludes:   opts.effectiveExcludes(),
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, f, opts.FollowSymlinks)
			if err != nil {
				return nil, err
			}
			for _, p := range discovered {
				add(p)
			}
		} else if f.matchesFile(absPath) {
			add(absPath)
		}
	}

	sort.Strings(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively collects matching source files under root.
// Hidden entries are skipped; permission errors inside the tree are
// tolerated so one unreadable directory does not abort the run.
func walkDirectory(ctx context.Context, root string, f filter, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(f.relativeTo(path), f.excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink.
				return nil
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if info.IsDir() {
				if !followSymlinks {
					return nil
				}
				// Walk the target rather than the link so WalkDir's
				// Lstat-based root handling cannot recurse forever.
				subFiles, err := walkDirectory(ctx, realPath, f, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if f.matchesFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// relativeTo returns path relative to the working directory for glob
// matching, falling back to the path itself.
func (f filter) relativeTo(path string) string {
	rel, err := filepath.Rel(f.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// matchesFile reports whether a file passes the extension and glob filters.
func (f filter) matchesFile(path string) bool {
	if !hasMatchingExtension(path, f.extensions) {
		return false
	}

	rel := f.relativeTo(path)
	if matchesAny(rel, f.excludes) {
		return false
	}
	if len(f.includes) > 0 && !matchesAny(rel, f.includes) {
		return false
	}
	return true
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern, with support for **
// segments ("build/**", "**/legacy", "**/vendor/**").
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" {
		if !strings.HasPrefix(path, prefix+"/") && path != prefix {
			return false
		}
	}
	if suffix == "" {
		return true
	}
	if strings.Contains(suffix, "**") {
		// "a/**/b/**" style: the trailing ** means any suffix under b.
		suffix = strings.TrimSuffix(suffix, "**")
		suffix = strings.TrimSuffix(suffix, "/")
		return strings.Contains(path, suffix)
	}

	if strings.HasSuffix(path, suffix) {
		return true
	}
	for _, part := range strings.Split(path, "/") {
		if matched, err := filepath.Match(suffix, part); err == nil && matched {
			return true
		}
	}
	return strings.Contains(path, suffix)
}
