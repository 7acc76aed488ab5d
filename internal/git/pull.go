package git

import (
	"context"
	"fmt"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the pull brought in new commits
	PullDone PullResult = iota
	// PullUnneeded indicates the branch was already up to date
	PullUnneeded
	// PullDiverged indicates the remote branch cannot be fast-forwarded
	PullDiverged
)

// PullFastForward fetches the branch from the remote and fast-forwards the
// local branch onto it. It never merges or rebases: a branch that cannot be
// fast-forwarded is reported as PullDiverged and left untouched.
func (r *CommandRunner) PullFastForward(ctx context.Context, remote, branch string) (PullResult, error) {
	if _, err := r.Run(ctx, "fetch", remote, branch); err != nil {
		return PullDiverged, fmt.Errorf("failed to fetch %s from %s: %w", branch, remote, err)
	}

	oldRev, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return PullDiverged, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, err := r.Run(ctx, "merge", "--ff-only", fmt.Sprintf("%s/%s", remote, branch)); err != nil {
		return PullDiverged, nil
	}

	newRev, _ := r.Run(ctx, "rev-parse", "HEAD")
	if oldRev == newRev {
		return PullUnneeded, nil
	}
	return PullDone, nil
}

// PullFastForward pulls in the default runner's working directory
func PullFastForward(ctx context.Context, remote, branch string) (PullResult, error) {
	return defaultRunner.PullFastForward(ctx, remote, branch)
}
