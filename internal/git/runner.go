// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	autosyncerrors "autosync.dev/autosync/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// defaultRunner is the global runner used by the package-level functions.
// It runs git in the process working directory.
var defaultRunner = &CommandRunner{}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", autosyncerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", autosyncerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Runner defines the git operations the actions depend on. It allows the
// actions to be exercised with a stub implementation in tests.
type Runner interface {
	// Repository information
	CurrentBranch() (string, error)
	ListRemotes() ([]string, error)
	ListBranches() ([]string, error)

	// Sync operations
	HasStagedChanges(ctx context.Context) (bool, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error
	PullFastForward(ctx context.Context, remote, branch string) (PullResult, error)
}

// NewRealRunnerWithDir returns a Runner that shells out to git in the given
// directory.
func NewRealRunnerWithDir(dir string) Runner {
	return &realRunner{runner: CommandRunner{workingDir: dir}}
}

// realRunner implements Runner by delegating to a CommandRunner
type realRunner struct {
	runner CommandRunner
}

func (r *realRunner) CurrentBranch() (string, error) {
	return r.runner.CurrentBranch()
}

func (r *realRunner) ListRemotes() ([]string, error) {
	return r.runner.ListRemotes()
}

func (r *realRunner) ListBranches() ([]string, error) {
	return r.runner.ListBranches()
}

func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	return r.runner.HasStagedChanges(ctx)
}

func (r *realRunner) StageAll(ctx context.Context) error {
	return r.runner.StageAll(ctx)
}

func (r *realRunner) Commit(ctx context.Context, message string) error {
	return r.runner.Commit(ctx, message)
}

func (r *realRunner) Push(ctx context.Context, remote, branch string) error {
	return r.runner.Push(ctx, remote, branch)
}

func (r *realRunner) PullFastForward(ctx context.Context, remote, branch string) (PullResult, error) {
	return r.runner.PullFastForward(ctx, remote, branch)
}
