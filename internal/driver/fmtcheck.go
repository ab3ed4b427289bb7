package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/carllerche/minifmt/internal/format"
	"github.com/carllerche/minifmt/internal/source"
)

// CheckResult reports the round-trip check of one file.
type CheckResult struct {
	Path    string
	OK      bool
	Message string
	Err     error
}

// CheckPaths verifies for every collected file that formatting, re-parsing
// and formatting again reproduces the same bytes. Files are never modified
// and the cache is not consulted.
func CheckPaths(ctx context.Context, paths []string, opts FormatOptions) ([]CheckResult, error) {
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

	results := make([]CheckResult, len(files))
	err = forEachFile(ctx, files, opts.Jobs, func(_ context.Context, i int, path string) error {
		result := CheckResult{Path: path}
		fileSet := source.NewFileSet()
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			result.Err = fmt.Errorf("driver: %w", loadErr)
			results[i] = result
			return nil
		}
		result.OK, result.Message = format.CheckRoundTrip(fileSet.Get(id), opts.Options, opts.MaxDiagnostics)
		logger.Debug("round-trip", "path", path, "ok", result.OK, "msg", result.Message)
		results[i] = result
		return nil
	})
	if err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	logger.Info("check finished", "files", len(results), "failed", failed,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return results, nil
}
