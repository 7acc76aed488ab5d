// Package config provides repository configuration management,
// including reading and writing autosync configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".autosync_config"

// Defaults mirror the hard-coded values of the original script.
const (
	// DefaultRemote is the remote pushed to when none is configured
	DefaultRemote = "origin"
	// DefaultBranch is the branch pushed when none is configured
	DefaultBranch = "main"
	// DefaultCommitMessage is the fixed message used for every sync commit
	DefaultCommitMessage = "Auto commit from script"
)

// RepoConfig represents the repository configuration stored in
// .git/.autosync_config. Pointer fields distinguish "unset" from zero values
// so env overrides and defaults only apply where the file is silent.
type RepoConfig struct {
	Remote *string  `yaml:"remote,omitempty"`
	Branch *string  `yaml:"branch,omitempty"`
	Strict *bool    `yaml:"strict,omitempty"`
	Pull   *bool    `yaml:"pull,omitempty"`
	Clean  []string `yaml:"clean,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// GetRepoConfig reads the repository configuration. A missing file is not an
// error: defaults apply. Any other read failure is reported.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// Save writes the repository configuration
func (c *RepoConfig) Save(repoRoot string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), data, 0600)
}

// IsInitialized checks if a config file has been written
func IsInitialized(repoRoot string) bool {
	_, err := os.Stat(configPath(repoRoot))
	return err == nil
}

// GetRemote returns the configured remote name. Precedence:
// AUTOSYNC_REMOTE env, config file, DefaultRemote.
func GetRemote(repoRoot string) (string, error) {
	if remote := os.Getenv("AUTOSYNC_REMOTE"); remote != "" {
		return remote, nil
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Remote != nil && *config.Remote != "" {
		return *config.Remote, nil
	}
	return DefaultRemote, nil
}

// GetBranch returns the configured branch name. Precedence:
// AUTOSYNC_BRANCH env, config file, DefaultBranch.
func GetBranch(repoRoot string) (string, error) {
	if branch := os.Getenv("AUTOSYNC_BRANCH"); branch != "" {
		return branch, nil
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Branch != nil && *config.Branch != "" {
		return *config.Branch, nil
	}
	return DefaultBranch, nil
}

// GetStrict returns whether sync halts at the first failing step
func GetStrict(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}
	if config.Strict != nil {
		return *config.Strict, nil
	}
	return false, nil
}

// GetPull returns whether sync pulls before staging
func GetPull(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}
	if config.Pull != nil {
		return *config.Pull, nil
	}
	return false, nil
}

// GetCleanPatterns returns the glob patterns removed before staging
func GetCleanPatterns(repoRoot string) ([]string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}
	return config.Clean, nil
}

// SetRemote updates the remote name in the config
func SetRemote(repoRoot string, remote string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	config.Remote = &remote
	return config.Save(repoRoot)
}

// SetBranch updates the branch name in the config
func SetBranch(repoRoot string, branch string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	config.Branch = &branch
	return config.Save(repoRoot)
}

// SetStrict updates the strict flag in the config
func SetStrict(repoRoot string, strict bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	config.Strict = &strict
	return config.Save(repoRoot)
}

// SetPull updates the pull flag in the config
func SetPull(repoRoot string, pull bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	config.Pull = &pull
	return config.Save(repoRoot)
}

// SetCleanPatterns updates the clean pattern list in the config
func SetCleanPatterns(repoRoot string, patterns []string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	config.Clean = patterns
	return config.Save(repoRoot)
}
