// Package actions implements the bodies of the CLI commands.
package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"autosync.dev/autosync/internal/config"
	autosyncerrors "autosync.dev/autosync/internal/errors"
	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/internal/output"
	"autosync.dev/autosync/internal/runtime"
)

// SyncOptions contains options for the sync action
type SyncOptions struct {
	// Remote and Branch are already resolved from flags, env and config
	Remote string
	Branch string
	// Pull fast-forwards the branch from the remote before staging
	Pull bool
	// CleanPatterns are glob patterns (relative to the repo root) deleted before staging
	CleanPatterns []string
	// Strict halts the sequence at the first failing step. The default
	// mirrors the original behavior: report and keep going, exit status
	// follows the last step that ran.
	Strict bool
}

// SyncAction runs the fixed sequence: optional pull, optional cleanup,
// stage all, commit with the fixed message, push.
func SyncAction(runCtx context.Context, opts SyncOptions, rt *runtime.Context) error {
	splog := rt.Splog

	// Step 0: pull (opt-in, fast-forward only)
	if opts.Pull {
		result, err := rt.Runner.PullFastForward(runCtx, opts.Remote, opts.Branch)
		switch {
		case err != nil:
			splog.Error("pull failed: %v", err)
			if opts.Strict {
				return err
			}
		case result == git.PullDiverged:
			splog.Warn("remote %s/%s has diverged, skipping fast-forward", opts.Remote, opts.Branch)
		case result == git.PullDone:
			splog.Info("%s pulled %s from %s", output.ColorOK("✓"), opts.Branch, opts.Remote)
		default:
			splog.Debug("already up to date with %s/%s", opts.Remote, opts.Branch)
		}
	}

	// Step 0b: cache cleanup
	if len(opts.CleanPatterns) > 0 {
		removed, err := cleanPatterns(rt.RepoRoot, opts.CleanPatterns)
		if err != nil {
			splog.Warn("cleanup failed: %v", err)
			if opts.Strict {
				return err
			}
		} else if removed > 0 {
			splog.Info("%s removed %d cached file(s)", output.ColorOK("✓"), removed)
		}
	}

	// Step 1: stage all changes
	if err := rt.Runner.StageAll(runCtx); err != nil {
		splog.Error("staging failed: %v", err)
		if opts.Strict {
			return err
		}
	} else {
		splog.Info("%s staged all changes", output.ColorOK("✓"))
	}

	// Step 2: commit with the fixed message
	hasStaged, err := rt.Runner.HasStagedChanges(runCtx)
	if err != nil {
		splog.Error("failed to inspect index: %v", err)
		if opts.Strict {
			return err
		}
	}
	switch {
	case !hasStaged && err == nil:
		splog.Info("%s nothing to commit, working tree clean", output.ColorSkipped("-"))
	default:
		err := rt.Runner.Commit(runCtx, config.DefaultCommitMessage)
		switch {
		case errors.Is(err, autosyncerrors.ErrNothingToCommit):
			splog.Info("%s nothing to commit, working tree clean", output.ColorSkipped("-"))
		case err != nil:
			splog.Error("commit failed: %v", err)
			if opts.Strict {
				return err
			}
		default:
			splog.Info("%s committed %q", output.ColorOK("✓"), config.DefaultCommitMessage)
		}
	}

	// Step 3: push. The wrapper's exit status follows the last step, so its
	// error is returned even in non-strict mode.
	if err := rt.Runner.Push(runCtx, opts.Remote, opts.Branch); err != nil {
		splog.Error("push failed: %v", err)
		return err
	}
	splog.Info("%s pushed %s to %s", output.ColorOK("✓"), opts.Branch, opts.Remote)

	return nil
}

// cleanPatterns deletes files and directories matching the configured glob
// patterns. Matches outside the repo root or inside .git are refused.
func cleanPatterns(repoRoot string, patterns []string) (int, error) {
	removed := 0
	for _, pattern := range patterns {
		if strings.Contains(pattern, "..") {
			return removed, fmt.Errorf("invalid clean pattern %q", pattern)
		}
		matches, err := filepath.Glob(filepath.Join(repoRoot, pattern))
		if err != nil {
			return removed, fmt.Errorf("invalid clean pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			rel, err := filepath.Rel(repoRoot, match)
			if err != nil || strings.HasPrefix(rel, "..") {
				continue
			}
			if rel == ".git" || strings.HasPrefix(rel, ".git"+string(filepath.Separator)) {
				continue
			}
			if err := os.RemoveAll(match); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", rel, err)
			}
			removed++
		}
	}
	return removed, nil
}
