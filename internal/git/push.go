package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	autosyncerrors "autosync.dev/autosync/internal/errors"
)

// Push pushes a branch to the given remote with -u so the upstream is
// recorded on first push.
func (r *CommandRunner) Push(ctx context.Context, remote, branch string) error {
	_, err := r.Run(ctx, "push", "-u", remote, branch)
	if err != nil {
		var cmdErr *autosyncerrors.GitCommandError
		if errors.As(err, &cmdErr) {
			if reason := pushRejectionReason(cmdErr); reason != "" {
				return autosyncerrors.NewPushRejectedError(remote, branch, reason)
			}
		}
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// pushRejectionReason maps well-known git push failures to a short reason.
// Anything unrecognized returns "" and is reported verbatim.
func pushRejectionReason(err *autosyncerrors.GitCommandError) string {
	combined := err.Stderr + err.Stdout
	switch {
	case strings.Contains(combined, "non-fast-forward"):
		return "remote has diverged (non-fast-forward)"
	case strings.Contains(combined, "fetch first"):
		return "remote has commits you do not have locally (fetch first)"
	case strings.Contains(combined, "Could not resolve host"),
		strings.Contains(combined, "Could not read from remote repository"):
		return "remote unreachable"
	case strings.Contains(combined, "Authentication failed"),
		strings.Contains(combined, "Permission denied"):
		return "authentication rejected"
	}
	return ""
}

// Push pushes a branch in the default runner's working directory
func Push(ctx context.Context, remote, branch string) error {
	return defaultRunner.Push(ctx, remote, branch)
}
