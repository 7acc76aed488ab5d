package git

import (
	"context"
	"fmt"
	"strings"

	autosyncerrors "autosync.dev/autosync/internal/errors"
)

// CurrentBranch returns the current branch name
func (r *CommandRunner) CurrentBranch() (string, error) {
	output, err := r.Run(context.Background(), "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if output == "" {
		// Detached HEAD
		return "", autosyncerrors.ErrBranchNotFound
	}
	return output, nil
}

// ListBranches returns all local branch names
func (r *CommandRunner) ListBranches() ([]string, error) {
	output, err := r.Run(context.Background(), "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return splitNonEmptyLines(output), nil
}

// ListRemotes returns the names of all configured remotes
func (r *CommandRunner) ListRemotes() ([]string, error) {
	output, err := r.Run(context.Background(), "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return splitNonEmptyLines(output), nil
}

// CurrentBranch returns the current branch in the default runner's working directory
func CurrentBranch() (string, error) {
	return defaultRunner.CurrentBranch()
}

// ListBranches returns local branches in the default runner's working directory
func ListBranches() ([]string, error) {
	return defaultRunner.ListBranches()
}

// ListRemotes returns remotes in the default runner's working directory
func ListRemotes() ([]string, error) {
	return defaultRunner.ListRemotes()
}

// splitNonEmptyLines splits command output into lines, dropping empty ones
func splitNonEmptyLines(s string) []string {
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
