package cli

import (
	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/actions"
	"autosync.dev/autosync/internal/config"
	"autosync.dev/autosync/internal/runtime"
)

// newRuntime creates a runtime context for a command invocation, applying the
// global output flags.
func newRuntime(flags *rootFlags) (*runtime.Context, error) {
	rt, err := runtime.NewContext(flags.repoPath)
	if err != nil {
		return nil, err
	}
	rt.Splog.SetQuiet(flags.quiet)
	if flags.debug {
		rt.Splog.SetDebug(true)
	}
	return rt, nil
}

// resolveSyncOptions merges flags, environment and repo config into the
// options for a sync. Flag > env > config file > default.
func resolveSyncOptions(cmd *cobra.Command, rt *runtime.Context, remote, branch string, pull, strict bool) (actions.SyncOptions, error) {
	opts := actions.SyncOptions{
		Remote: remote,
		Branch: branch,
		Pull:   pull,
		Strict: strict,
	}

	var err error
	if opts.Remote == "" {
		if opts.Remote, err = config.GetRemote(rt.RepoRoot); err != nil {
			return opts, err
		}
	}
	if opts.Branch == "" {
		if opts.Branch, err = config.GetBranch(rt.RepoRoot); err != nil {
			return opts, err
		}
	}
	if !cmd.Flags().Changed("pull") {
		if opts.Pull, err = config.GetPull(rt.RepoRoot); err != nil {
			return opts, err
		}
	}
	if !cmd.Flags().Changed("strict") {
		if opts.Strict, err = config.GetStrict(rt.RepoRoot); err != nil {
			return opts, err
		}
	}
	if opts.CleanPatterns, err = config.GetCleanPatterns(rt.RepoRoot); err != nil {
		return opts, err
	}

	return opts, nil
}
