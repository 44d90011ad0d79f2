package runner

import (
	"context"
	"log/slog"
	"time"

	cfgpkg "gooze.dev/pkg/gooze/internal/config"
	m "gooze.dev/pkg/gooze/internal/model"
)

// Runner applies one mutation, delegates the kill/survive decision to a
// Judge, and times the whole operation. It owns nothing about how the
// decision is reached — that is entirely the Judge's concern.
type Runner struct {
	Judge Judge
}

// NewRunner constructs a Runner backed by the given Judge.
func NewRunner(judge Judge) *Runner {
	return &Runner{Judge: judge}
}

// Run applies mutation to originalBytes, runs the configured Judge under a
// per-mutation timeout, and returns the resulting MutationResult. It never
// returns a non-nil error for a judging failure — judging failures become
// an Error-status result instead, per the taxonomy in spec §7. The error
// return is always nil; a nil Judge panics.
func (r *Runner) Run(ctx context.Context, mutation m.Mutation, originalBytes []byte, cfg *cfgpkg.Config) (m.MutationResult, error) {
	start := time.Now()

	mutatedBytes := applyMutation(originalBytes, mutation)

	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, message, err := r.Judge.Judge(runCtx, mutatedBytes, mutation.File)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		slog.Error("judging failed", "file", mutation.File, "mutation", mutation.ID, "error", err)
		return m.MutationResult{
			Mutation:   mutation,
			Status:     m.Error,
			DurationMs: duration,
			Message:    err.Error(),
		}, nil
	}

	if runCtx.Err() != nil {
		status = m.Timeout
		message = "mutation judging exceeded its time budget"
	}

	return m.MutationResult{
		Mutation:   mutation,
		Status:     status,
		DurationMs: duration,
		Message:    message,
	}, nil
}
