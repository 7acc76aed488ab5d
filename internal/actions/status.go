package actions

import (
	"errors"

	autosyncerrors "autosync.dev/autosync/internal/errors"
	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/internal/output"
	"autosync.dev/autosync/internal/runtime"
)

// StatusOptions contains options for the status action
type StatusOptions struct {
	Remote string
	Branch string
}

// StatusAction prints a read-only report of the repository and what a sync
// would do.
func StatusAction(opts StatusOptions, rt *runtime.Context) error {
	splog := rt.Splog

	repo, err := git.OpenRepository(rt.RepoRoot)
	if err != nil {
		return err
	}

	status, err := repo.Status()
	if err != nil {
		return err
	}

	currentBranch, err := rt.Runner.CurrentBranch()
	if errors.Is(err, autosyncerrors.ErrBranchNotFound) {
		currentBranch = "(detached HEAD)"
	} else if err != nil {
		return err
	}

	splog.Info("repository: %s", rt.RepoRoot)
	splog.Info("branch:     %s", output.ColorBranchName(currentBranch, currentBranch == opts.Branch))
	splog.Info("target:     %s/%s", opts.Remote, opts.Branch)

	hasRemote, err := repo.HasRemote(opts.Remote)
	if err != nil {
		return err
	}
	if !hasRemote {
		splog.Warn("remote %q is not configured", opts.Remote)
	}

	splog.Newline()
	splog.Info("staged:     %d", status.Staged)
	splog.Info("unstaged:   %d", status.Unstaged)
	splog.Info("untracked:  %d", status.Untracked)
	splog.Newline()

	if status.Clean() {
		splog.Info("%s sync would push without creating a commit", output.ColorOK("clean"))
	} else {
		splog.Info("%s sync would commit %d change(s) and push", output.ColorSkipped("dirty"),
			status.Staged+status.Unstaged+status.Untracked)
	}

	return nil
}
