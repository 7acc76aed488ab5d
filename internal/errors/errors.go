// Package errors provides sentinel errors and custom error types for the autosync application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNothingToCommit indicates that the index has no staged changes
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrPushRejected indicates that the remote rejected the push
	ErrPushRejected = errors.New("push rejected")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")
)

// PushRejectedError represents a push that the remote refused
type PushRejectedError struct {
	Remote string
	Branch string
	Reason string
}

func (e *PushRejectedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("push of %s to %s rejected: %s", e.Branch, e.Remote, e.Reason)
	}
	return fmt.Sprintf("push of %s to %s rejected", e.Branch, e.Remote)
}

// Is returns true if the target error is ErrPushRejected
func (e *PushRejectedError) Is(target error) bool {
	return target == ErrPushRejected
}

// NewPushRejectedError creates a new PushRejectedError
func NewPushRejectedError(remote, branch, reason string) *PushRejectedError {
	return &PushRejectedError{Remote: remote, Branch: branch, Reason: reason}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
