package cli

import (
	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/actions"
)

// newSyncCmd creates the sync command
func newSyncCmd(flags *rootFlags) *cobra.Command {
	var (
		remote string
		branch string
		pull   bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Stage all changes, commit, and push",
		Long: `Stage all working-tree changes, commit them with the fixed message, and
push the configured branch to the configured remote.

Each step is attempted in order. By default a failing step is reported and
the sequence continues; the exit status follows the final push. With
--strict the sequence halts at the first failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			opts, err := resolveSyncOptions(cmd, rt, remote, branch, pull, strict)
			if err != nil {
				return err
			}

			return actions.SyncAction(cmd.Context(), opts, rt)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to (default from config, then \"origin\")")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to push (default from config, then \"main\")")
	cmd.Flags().BoolVar(&pull, "pull", false, "Fast-forward the branch from the remote before staging")
	cmd.Flags().BoolVar(&strict, "strict", false, "Halt the sequence at the first failing step")

	return cmd
}
