package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	autosyncerrors "autosync.dev/autosync/internal/errors"
)

// Commit creates a commit with the given message. The commit is always
// non-interactive: the message is passed with -m and no editor is opened.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		var cmdErr *autosyncerrors.GitCommandError
		if errors.As(err, &cmdErr) && isNothingToCommit(cmdErr) {
			return autosyncerrors.ErrNothingToCommit
		}
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// HeadMessage returns the subject line of the HEAD commit
func (r *CommandRunner) HeadMessage() (string, error) {
	output, err := r.Run(context.Background(), "log", "-1", "--format=%s")
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD message: %w", err)
	}
	return output, nil
}

// isNothingToCommit detects git's "nothing to commit" exit. git signals it
// through exit code 1 with the status summary on stdout.
func isNothingToCommit(err *autosyncerrors.GitCommandError) bool {
	return strings.Contains(err.Stdout, "nothing to commit") ||
		strings.Contains(err.Stderr, "nothing to commit")
}

// Commit creates a commit in the default runner's working directory
func Commit(ctx context.Context, message string) error {
	return defaultRunner.Commit(ctx, message)
}

// HeadMessage returns the HEAD subject line in the default runner's working directory
func HeadMessage() (string, error) {
	return defaultRunner.HeadMessage()
}
