package cli

import (
	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/actions"
)

// newInitCmd creates the init command
func newInitCmd(flags *rootFlags) *cobra.Command {
	var (
		remote string
		branch string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Configure autosync for this repository",
		Long: `Write the repository configuration (.git/.autosync_config), prompting for
the remote and branch to push to. The prompts are skipped for any value
supplied through a flag. Running init is optional: without a config file,
sync pushes main to origin.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			return actions.InitAction(actions.InitOptions{
				Remote: remote,
				Branch: branch,
				Force:  force,
			}, rt)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to (skips the prompt)")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to push (skips the prompt)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration without asking")

	return cmd
}
