// Package runner implements the per-mutation judge (C7): applying a single
// mutation to its source file and deciding whether it was Killed, Survived,
// Timed out, or Errored.
package runner

import (
	"context"

	m "gooze.dev/pkg/gooze/internal/model"
)

// Judge is the strategy a Runner delegates the actual kill/survive decision
// to. The Runner does no backup or restore of its own: BuildJudge overwrites
// the on-disk file and restores it itself, IsolatedJudge works on a scratch
// copy and never touches the original.
type Judge interface {
	Judge(ctx context.Context, mutatedBytes []byte, file string) (m.MutationStatus, string, error)
}
