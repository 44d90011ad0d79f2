package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	m "gooze.dev/pkg/gooze/internal/model"
)

// BuildJudge judges a mutation by overwriting the real project file and
// invoking the configured build command against it. The original file's
// .bak backup is advisory only — restoration on every exit path happens
// from the in-memory OriginalBytes, via a deferred restore closure.
type BuildJudge struct {
	Command       string
	WorkDir       string
	KeepTempFiles bool
	OriginalBytes []byte
}

// NewBuildJudge constructs a BuildJudge that runs command in workDir,
// restoring file to originalBytes once judging completes.
func NewBuildJudge(command, workDir string, originalBytes []byte, keepTempFiles bool) *BuildJudge {
	return &BuildJudge{
		Command:       command,
		WorkDir:       workDir,
		KeepTempFiles: keepTempFiles,
		OriginalBytes: originalBytes,
	}
}

func (j *BuildJudge) Judge(ctx context.Context, mutatedBytes []byte, file string) (status m.MutationStatus, message string, err error) {
	backupPath := file + ".bak"

	if werr := os.WriteFile(backupPath, j.OriginalBytes, 0o600); werr != nil {
		slog.Warn("failed to write advisory backup", "file", file, "error", werr)
	} else if !j.KeepTempFiles {
		defer func() { _ = os.Remove(backupPath) }()
	}

	restore := func() {
		if rerr := os.WriteFile(file, j.OriginalBytes, 0o600); rerr != nil {
			slog.Error("failed to restore original file after judging", "file", file, "error", rerr)
			status, message, err = m.Error, "failed to restore original file: "+rerr.Error(), nil
		}
	}
	defer restore()

	if werr := os.WriteFile(file, mutatedBytes, 0o600); werr != nil {
		return m.Error, "", fmt.Errorf("write mutated file: %w", werr)
	}

	parts := strings.Fields(j.Command)
	if len(parts) == 0 {
		return m.Error, "", fmt.Errorf("empty build command")
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = j.WorkDir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return m.Timeout, output.String(), nil
	}

	if runErr != nil {
		return m.Killed, output.String(), nil
	}

	return m.Survived, output.String(), nil
}
