// Package schedule implements the worker pool (C8) that fans mutations out
// to the runner, serializing per-file access in build mode and folding
// results into a running Stats value.
package schedule

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	cfgpkg "gooze.dev/pkg/gooze/internal/config"
	m "gooze.dev/pkg/gooze/internal/model"
	"gooze.dev/pkg/gooze/internal/runner"
)

// ProgressFunc is invoked after every completed mutation with the
// completion-order count and the total, letting a UI render a live bar.
type ProgressFunc func(completed, total int)

// Schedule runs every mutation in mutations, each against the matching
// entry of originals (keyed by mutation.File), and returns a channel of
// results in completion order plus a pointer to the Stats being folded as
// results arrive. The Stats pointer is safe to read once the channel has
// been drained and closed; reading it mid-run races with the fold.
//
// cfg.Parallel <= 1 takes the sequential path: mutations run one at a time,
// in traversal order. cfg.Parallel > 1 fans mutations across a bounded
// worker pool, serializing mutations that share a file behind a per-file
// mutex so BuildJudge never has two workers overwriting the same file at
// once.
func Schedule(ctx context.Context, mutations []m.Mutation, originals map[string][]byte, cfg *cfgpkg.Config, workDir string, onProgress ProgressFunc) (<-chan m.MutationResult, *m.Stats) {
	stats := &m.Stats{}

	var statsMu sync.Mutex

	results := make(chan m.MutationResult, len(mutations))

	var completed atomic.Int64

	total := len(mutations)

	record := func(r m.MutationResult) {
		statsMu.Lock()
		stats.Add(r)
		statsMu.Unlock()

		results <- r

		n := completed.Add(1)
		if onProgress != nil {
			onProgress(int(n), total)
		}
	}

	if cfg.Parallel <= 1 {
		go func() {
			defer close(results)

			for _, mutation := range mutations {
				if ctx.Err() != nil {
					record(timedOutResult(mutation))
					continue
				}

				record(runOne(ctx, mutation, originals, cfg, workDir))
			}
		}()

		return results, stats
	}

	go func() {
		defer close(results)

		var fileLocksGuard sync.Mutex

		fileLocks := make(map[string]*sync.Mutex)

		lockFor := func(file string) *sync.Mutex {
			fileLocksGuard.Lock()
			defer fileLocksGuard.Unlock()

			if _, ok := fileLocks[file]; !ok {
				fileLocks[file] = &sync.Mutex{}
			}

			return fileLocks[file]
		}

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(cfg.Parallel)

		for _, mut := range mutations {
			mutation := mut

			group.Go(func() error {
				mu := lockFor(mutation.File)
				mu.Lock()
				defer mu.Unlock()

				record(runOne(groupCtx, mutation, originals, cfg, workDir))

				return nil
			})
		}

		_ = group.Wait()
	}()

	return results, stats
}

func runOne(ctx context.Context, mutation m.Mutation, originals map[string][]byte, cfg *cfgpkg.Config, workDir string) m.MutationResult {
	original := originals[mutation.File]

	var judge runner.Judge
	if cfg.Isolated {
		judge = runner.NewIsolatedJudge(cfg.KeepTempFiles)
	} else {
		judge = runner.NewBuildJudge(cfg.TestCommand, workDir, original, cfg.KeepTempFiles)
	}

	result, err := runner.NewRunner(judge).Run(ctx, mutation, original, cfg)
	if err != nil {
		return m.MutationResult{
			Mutation:   mutation,
			Status:     m.Error,
			DurationMs: 0,
			Message:    err.Error(),
		}
	}

	return result
}

func timedOutResult(mutation m.Mutation) m.MutationResult {
	return m.MutationResult{
		Mutation:   mutation,
		Status:     m.Timeout,
		DurationMs: 0,
		Message:    "scheduler context already cancelled before this mutation started",
	}
}
