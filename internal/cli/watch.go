package cli

import (
	"time"

	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/actions"
	"autosync.dev/autosync/internal/watch"
)

// newWatchCmd creates the watch command
func newWatchCmd(flags *rootFlags) *cobra.Command {
	var (
		remote      string
		branch      string
		pull        bool
		strict      bool
		interval    time.Duration
		minInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sync automatically when the working tree changes",
		Long: `Watch the working tree and run a sync whenever files change. Event bursts
are debounced and syncs are spaced at least --min-interval apart. With
--interval a sync also runs periodically even without changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			syncOpts, err := resolveSyncOptions(cmd, rt, remote, branch, pull, strict)
			if err != nil {
				return err
			}

			return actions.WatchAction(cmd.Context(), actions.WatchOptions{
				Sync:        syncOpts,
				Interval:    interval,
				MinInterval: minInterval,
			}, rt)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to (default from config, then \"origin\")")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to push (default from config, then \"main\")")
	cmd.Flags().BoolVar(&pull, "pull", false, "Fast-forward the branch from the remote before staging")
	cmd.Flags().BoolVar(&strict, "strict", false, "Halt each sync at the first failing step")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Also sync periodically at this interval (0 disables)")
	cmd.Flags().DurationVar(&minInterval, "min-interval", watch.DefaultMinInterval, "Minimum time between two syncs")

	return cmd
}
