package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"autosync.dev/autosync/internal/config"
	"autosync.dev/autosync/internal/runtime"
)

// InitOptions contains options for the init action
type InitOptions struct {
	// Remote and Branch skip the corresponding prompt when non-empty
	Remote string
	Branch string
	// Force rewrites an existing config without asking
	Force bool
}

// ErrInteractiveDisabled is returned when prompts are required but disabled
// via AUTOSYNC_NO_INTERACTIVE (set by tests and CI).
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (AUTOSYNC_NO_INTERACTIVE is set)")

func checkInteractiveAllowed() error {
	if os.Getenv("AUTOSYNC_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// InitAction writes the repository configuration, prompting for any value
// not supplied through options.
func InitAction(opts InitOptions, rt *runtime.Context) error {
	splog := rt.Splog

	if config.IsInitialized(rt.RepoRoot) && !opts.Force {
		if err := checkInteractiveAllowed(); err != nil {
			return fmt.Errorf("already initialized, use --force to overwrite")
		}
		overwrite := false
		prompt := &survey.Confirm{
			Message: "autosync is already configured for this repository. Overwrite?",
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return fmt.Errorf("canceled")
		}
		if !overwrite {
			return nil
		}
	}

	remote := opts.Remote
	if remote == "" {
		selected, err := promptRemote(rt)
		if err != nil {
			return err
		}
		remote = selected
	}

	branch := opts.Branch
	if branch == "" {
		selected, err := promptBranch(rt)
		if err != nil {
			return err
		}
		branch = selected
	}

	cfg := &config.RepoConfig{
		Remote: &remote,
		Branch: &branch,
	}
	if err := cfg.Save(rt.RepoRoot); err != nil {
		return err
	}

	splog.Info("configured sync of %s to %s", branch, remote)
	return nil
}

func promptRemote(rt *runtime.Context) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	remotes, err := rt.Runner.ListRemotes()
	if err != nil {
		return "", err
	}
	if len(remotes) == 0 {
		return "", fmt.Errorf("no remotes configured, add one with 'git remote add'")
	}
	if len(remotes) == 1 {
		return remotes[0], nil
	}

	defaultRemote := remotes[0]
	for _, r := range remotes {
		if r == config.DefaultRemote {
			defaultRemote = r
		}
	}

	var remote string
	prompt := &survey.Select{
		Message: "Which remote should autosync push to?",
		Options: remotes,
		Default: defaultRemote,
	}
	if err := survey.AskOne(prompt, &remote); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return remote, nil
}

func promptBranch(rt *runtime.Context) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	branches, err := rt.Runner.ListBranches()
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		// Unborn HEAD: fall back to the default
		return config.DefaultBranch, nil
	}
	if len(branches) == 1 {
		return branches[0], nil
	}

	defaultBranch := branches[0]
	if current, err := rt.Runner.CurrentBranch(); err == nil {
		defaultBranch = current
	}

	var branch string
	prompt := &survey.Select{
		Message: "Which branch should autosync push?",
		Options: branches,
		Default: defaultBranch,
	}
	if err := survey.AskOne(prompt, &branch); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return branch, nil
}
