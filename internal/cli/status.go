package cli

import (
	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/actions"
	"autosync.dev/autosync/internal/config"
)

// newStatusCmd creates the status command
func newStatusCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what a sync would do",
		Long:  `Show the repository, the configured sync target, and the working-tree state.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			remote, err := config.GetRemote(rt.RepoRoot)
			if err != nil {
				return err
			}
			branch, err := config.GetBranch(rt.RepoRoot)
			if err != nil {
				return err
			}

			return actions.StatusAction(actions.StatusOptions{
				Remote: remote,
				Branch: branch,
			}, rt)
		},
	}

	return cmd
}
