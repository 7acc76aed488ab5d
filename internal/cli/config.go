package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"autosync.dev/autosync/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration values",
		Long: `Get or set configuration values stored in .git/.autosync_config.

Usage:
  autosync config                  # Show all config
  autosync config remote           # Get a value
  autosync config remote upstream  # Set a value

Keys:
  remote   Remote pushed to (default "origin")
  branch   Branch pushed (default "main")
  strict   Halt sync at the first failing step (true/false)
  pull     Fast-forward before staging (true/false)
  clean    Comma-separated glob patterns deleted before staging`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			rt, err := newRuntime(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			if len(args) == 0 {
				return showConfig(rt.RepoRoot, rt.Splog.Info)
			}
			if len(args) == 1 {
				return getConfigValue(rt.RepoRoot, args[0], rt.Splog.Info)
			}
			return setConfigValue(rt.RepoRoot, args[0], args[1])
		},
	}

	return cmd
}

func showConfig(repoRoot string, print func(string, ...interface{})) error {
	remote, err := config.GetRemote(repoRoot)
	if err != nil {
		return err
	}
	branch, err := config.GetBranch(repoRoot)
	if err != nil {
		return err
	}
	strict, err := config.GetStrict(repoRoot)
	if err != nil {
		return err
	}
	pull, err := config.GetPull(repoRoot)
	if err != nil {
		return err
	}
	clean, err := config.GetCleanPatterns(repoRoot)
	if err != nil {
		return err
	}

	print("remote: %s", remote)
	print("branch: %s", branch)
	print("strict: %t", strict)
	print("pull:   %t", pull)
	print("clean:  %s", strings.Join(clean, ","))
	return nil
}

func getConfigValue(repoRoot, key string, print func(string, ...interface{})) error {
	switch key {
	case "remote":
		value, err := config.GetRemote(repoRoot)
		if err != nil {
			return err
		}
		print("%s", value)
	case "branch":
		value, err := config.GetBranch(repoRoot)
		if err != nil {
			return err
		}
		print("%s", value)
	case "strict":
		value, err := config.GetStrict(repoRoot)
		if err != nil {
			return err
		}
		print("%t", value)
	case "pull":
		value, err := config.GetPull(repoRoot)
		if err != nil {
			return err
		}
		print("%t", value)
	case "clean":
		value, err := config.GetCleanPatterns(repoRoot)
		if err != nil {
			return err
		}
		print("%s", strings.Join(value, ","))
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func setConfigValue(repoRoot, key, value string) error {
	switch key {
	case "remote":
		return config.SetRemote(repoRoot, value)
	case "branch":
		return config.SetBranch(repoRoot, value)
	case "strict":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict must be true or false: %w", err)
		}
		return config.SetStrict(repoRoot, parsed)
	case "pull":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("pull must be true or false: %w", err)
		}
		return config.SetPull(repoRoot, parsed)
	case "clean":
		var patterns []string
		for _, p := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				patterns = append(patterns, trimmed)
			}
		}
		return config.SetCleanPatterns(repoRoot, patterns)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}
