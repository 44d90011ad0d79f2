package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gooze.dev/pkg/gooze/internal/lean"
	m "gooze.dev/pkg/gooze/internal/model"
)

// IsolatedJudge judges a mutation without invoking the project's build tool:
// it writes the mutated bytes to a scratch file and re-parses them. A parse
// failure means the mutation produced syntactically invalid code, which
// counts as Killed (the weakest possible test, but a real one); a clean
// parse means the mutant Survived this judge's scrutiny.
type IsolatedJudge struct {
	KeepTempFiles bool
}

// NewIsolatedJudge constructs an IsolatedJudge.
func NewIsolatedJudge(keepTempFiles bool) *IsolatedJudge {
	return &IsolatedJudge{KeepTempFiles: keepTempFiles}
}

func (j *IsolatedJudge) Judge(ctx context.Context, mutatedBytes []byte, file string) (m.MutationStatus, string, error) {
	if err := ctx.Err(); err != nil {
		return m.Timeout, "context expired before judging", nil
	}

	dir, err := os.MkdirTemp("", fmt.Sprintf("gooze-mutation-%d-*", time.Now().UnixNano()))
	if err != nil {
		return m.Error, "", fmt.Errorf("create scratch dir: %w", err)
	}

	if !j.KeepTempFiles {
		defer func() { _ = os.RemoveAll(dir) }()
	}

	scratchPath := filepath.Join(dir, filepath.Base(file))

	if err := os.WriteFile(scratchPath, mutatedBytes, 0o600); err != nil {
		return m.Error, "", fmt.Errorf("write scratch file: %w", err)
	}

	if _, err := lean.Parse(scratchPath, mutatedBytes); err != nil {
		return m.Killed, err.Error(), nil
	}

	return m.Survived, "parsed without error under isolated judge", nil
}
