package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"fortio.org/safecast"
	"github.com/charmbracelet/log"

	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/format"
	"github.com/carllerche/minifmt/internal/source"
)

// ErrNoSourceFiles is returned when the given paths contain nothing to format.
var ErrNoSourceFiles = errors.New("driver: no source files found")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool
	Stdout         bool
	MaxDiagnostics int
	Options        format.Options

	// Jobs limits concurrent files; 0 means GOMAXPROCS.
	Jobs int
	// Extensions selects files inside directories, e.g. ".rs".
	Extensions []string
	// Exclude lists directory or file base names skipped while walking.
	Exclude []string

	Cache  *DiskCache
	Logger *log.Logger
}

func (o *FormatOptions) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte

	// Diagnostics and FileSet are set when Err is a *format.ParseError.
	Diagnostics *diag.Bag
	FileSet     *source.FileSet
}

// FormatPaths formats provided files or directories (recursively collecting
// files by extension). When opts.Check is true, files are not modified;
// Changed indicates whether formatting would update the file contents. When
// opts.Stdout is true, formatted content is returned in the results without
// touching files on disk. Results are sorted by path.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.logger()
	started := time.Now()

	files, err := CollectSourceFiles(ctx, paths, opts.Extensions, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	results := make([]FormatResult, len(files))
	err = forEachFile(ctx, files, opts.Jobs, func(_ context.Context, i int, path string) error {
		result := formatSingleFile(path, &opts, logger)
		if result.Err == nil && result.Changed && !opts.Check && !opts.Stdout {
			result.Err = writeFormatted(path, result.Formatted)
			result.Formatted = nil
		}
		results[i] = result
		return nil
	})
	if err != nil {
		return results, err
	}

	var changed, failed, cached int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Changed:
			changed++
		}
		if r.Cached {
			cached++
		}
	}
	logger.Info("format finished",
		"files", len(results), "changed", changed, "failed", failed, "cached", cached,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return results, nil
}

func formatSingleFile(path string, opts *FormatOptions, logger *log.Logger) FormatResult {
	result := FormatResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("driver: %w", err)
		return result
	}

	key := NewCacheKey(data, opts.Options)
	var payload DiskPayload
	hit, err := opts.Cache.Get(key, len(data), &payload)
	if err != nil {
		logger.Warn("cache read failed", "path", path, "err", err)
	}
	if hit {
		result.Cached = true
		if payload.Clean {
			result.Formatted = data
		} else {
			result.Formatted = payload.Formatted
			result.Changed = true
		}
		logger.Debug("cache hit", "path", path, "changed", result.Changed)
		return result
	}

	fileSet := source.NewFileSet()
	content, flags := source.Normalize(data)
	sf := fileSet.Get(fileSet.Add(path, content, flags))

	formatted, err := format.FormatSourceLimit(sf, opts.Options, opts.MaxDiagnostics)
	if err != nil {
		var parseErr *format.ParseError
		if errors.As(err, &parseErr) {
			result.Diagnostics = parseErr.Bag
			result.FileSet = fileSet
		}
		result.Err = err
		logger.Debug("format failed", "path", path, "err", err)
		return result
	}

	result.Formatted = formatted
	result.Changed = !bytes.Equal(data, formatted)
	if result.Changed {
		logger.Debug("formatted", "path", path)
	} else {
		logger.Debug("unchanged", "path", path)
	}

	size, err := safecast.Conv[uint32](len(data))
	if err == nil {
		entry := DiskPayload{Size: size, Clean: !result.Changed}
		if result.Changed {
			entry.Formatted = formatted
		}
		if err := opts.Cache.Put(key, &entry); err != nil {
			logger.Warn("cache write failed", "path", path, "err", err)
		}
	}
	return result
}

func writeFormatted(path string, formatted []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	return nil
}

// CollectSourceFiles expands paths into a sorted, de-duplicated list of
// files. Directories are walked recursively and only files whose extension
// is in exts are taken; entries whose base name is in exclude are skipped.
// Files named explicitly are taken whatever their extension.
func CollectSourceFiles(ctx context.Context, paths, exts, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("driver: %w", err)
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if path != p && slices.Contains(exclude, d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if slices.Contains(exts, filepath.Ext(path)) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("driver: %w", err)
		}
	}

	sort.Strings(files)
	return files, nil
}
