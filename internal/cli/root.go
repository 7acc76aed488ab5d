// Package cli wires the cobra command tree for the autosync binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootFlags holds flags shared by every command
type rootFlags struct {
	repoPath string
	quiet    bool
	debug    bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "autosync",
		Short: "Autosync stages, commits and pushes a repository in one step",
		Long: `Autosync automates the fixed sequence: stage all working-tree changes,
commit with a constant message, and push to a configured remote branch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.PersistentFlags().StringVarP(&flags.repoPath, "repo", "C", ".", "Path to the repository to operate on")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress console output")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Show debug output")

	// Add subcommands
	rootCmd.AddCommand(newSyncCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))

	return rootCmd
}
