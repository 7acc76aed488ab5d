// Package runtime provides a context type that holds the git runner and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"path/filepath"

	"github.com/joho/godotenv"

	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/internal/output"
)

const logFileName = "autosync.log"

// Context provides access to the git runner and output for commands
type Context struct {
	Runner   git.Runner
	Splog    *output.Splog
	RepoRoot string
}

// NewContext creates a context rooted at the repository containing dir.
// It loads a .env file from the repo root if present, points the git runner
// at the repo, and attaches a rotating file log under .git/.
func NewContext(dir string) (*Context, error) {
	repoRoot, err := git.FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	// Env overrides may live alongside the repo
	_ = godotenv.Load(filepath.Join(repoRoot, ".env"))

	splog, err := output.NewSplogWithLogFile(filepath.Join(repoRoot, ".git", logFileName))
	if err != nil {
		// Fall back to console-only logging
		splog = output.NewSplog()
	}

	return &Context{
		Runner:   git.NewRealRunnerWithDir(repoRoot),
		Splog:    splog,
		RepoRoot: repoRoot,
	}, nil
}

// NewContextWithRunner creates a context with an explicit runner, used by tests.
func NewContextWithRunner(runner git.Runner, repoRoot string) *Context {
	return &Context{
		Runner:   runner,
		Splog:    output.NewSplog(),
		RepoRoot: repoRoot,
	}
}

// Close releases resources held by the context.
func (c *Context) Close() error {
	return c.Splog.Close()
}
