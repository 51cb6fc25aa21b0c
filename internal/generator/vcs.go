package generator

import (
	"context"
	"os/exec"

	"github.com/fastapi-gen/cli/internal/output"
	"github.com/fastapi-gen/cli/internal/version"
)

// VCSStatus reports the outcome of the best-effort repository initialization.
type VCSStatus struct {
	// Initialized is true when `git init` succeeded in the destination.
	Initialized bool

	// Ignored holds the failure that was tolerated, nil on success.
	Ignored error
}

// initVCS runs `git init` in dest. Failures never fail generation; they are
// returned as an ignored status for logging.
func initVCS(ctx context.Context, dest string) VCSStatus {
	git := version.DetectGit()
	if !git.Found {
		output.Debug("skipping repository init", "reason", git.Message)
		return VCSStatus{Ignored: exec.ErrNotFound}
	}

	cmd := exec.CommandContext(ctx, git.Path, "init")
	cmd.Dir = dest
	if out, err := cmd.CombinedOutput(); err != nil {
		output.Debug("repository init failed", "error", err, "output", string(out))
		return VCSStatus{Ignored: err}
	}

	return VCSStatus{Initialized: true}
}
