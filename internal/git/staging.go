package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked files and deletions
func (r *CommandRunner) StageAll(ctx context.Context) error {
	_, err := r.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func (r *CommandRunner) HasUnstagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func (r *CommandRunner) HasUntrackedFiles(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// StageAll stages all changes in the default runner's working directory
func StageAll(ctx context.Context) error {
	return defaultRunner.StageAll(ctx)
}

// HasStagedChanges checks for staged changes in the default runner's working directory
func HasStagedChanges(ctx context.Context) (bool, error) {
	return defaultRunner.HasStagedChanges(ctx)
}

// HasUnstagedChanges checks for unstaged changes in the default runner's working directory
func HasUnstagedChanges(ctx context.Context) (bool, error) {
	return defaultRunner.HasUnstagedChanges(ctx)
}

// HasUntrackedFiles checks for untracked files in the default runner's working directory
func HasUntrackedFiles(ctx context.Context) (bool, error) {
	return defaultRunner.HasUntrackedFiles(ctx)
}
