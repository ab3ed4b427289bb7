package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachFile runs fn for every index of files with at most jobs
// concurrent calls. Each goroutine owns results[i], so fn needs no locking.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string) error) error {
	if len(files) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i, path)
		})
	}
	return g.Wait()
}
