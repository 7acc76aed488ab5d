package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	autosyncerrors "autosync.dev/autosync/internal/errors"
)

// Repository wraps a go-git repository for read-only inspection
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens a git repository at the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", autosyncerrors.ErrNotARepository, absPath)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// WorktreeStatus summarizes the working tree state
type WorktreeStatus struct {
	Staged    int
	Unstaged  int
	Untracked int
}

// Clean reports whether a sync would have nothing to commit
func (s WorktreeStatus) Clean() bool {
	return s.Staged == 0 && s.Unstaged == 0 && s.Untracked == 0
}

// Status inspects the working tree via go-git and counts staged, unstaged
// and untracked paths.
func (r *Repository) Status() (WorktreeStatus, error) {
	worktree, err := r.Worktree()
	if err != nil {
		return WorktreeStatus{}, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return WorktreeStatus{}, fmt.Errorf("failed to get worktree status: %w", err)
	}

	var result WorktreeStatus
	for _, fileStatus := range status {
		if fileStatus.Staging == gogit.Untracked && fileStatus.Worktree == gogit.Untracked {
			result.Untracked++
			continue
		}
		if fileStatus.Staging != gogit.Unmodified {
			result.Staged++
		}
		if fileStatus.Worktree != gogit.Unmodified {
			result.Unstaged++
		}
	}
	return result, nil
}

// RemoteNames returns the names of all configured remotes
func (r *Repository) RemoteNames() ([]string, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	return names, nil
}

// HasRemote reports whether a remote with the given name is configured
func (r *Repository) HasRemote(name string) (bool, error) {
	names, err := r.RemoteNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}
