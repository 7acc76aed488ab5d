package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/testhelpers"
)

func TestRepositoryStatus(t *testing.T) {
	t.Run("clean tree has no counts", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		status, err := repo.Status()
		require.NoError(t, err)
		require.True(t, status.Clean())
	})

	t.Run("counts staged, unstaged and untracked paths", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "tracked")
		})

		// Staged new file
		require.NoError(t, scene.Repo.CreateChange("staged", "staged", false))
		// Unstaged modification to a tracked file
		require.NoError(t, scene.Repo.CreateChange("modified", "tracked", true))
		// Untracked file
		require.NoError(t, scene.Repo.CreateChange("untracked", "untracked", true))

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		status, err := repo.Status()
		require.NoError(t, err)
		require.False(t, status.Clean())
		require.Equal(t, 1, status.Staged)
		require.Equal(t, 1, status.Unstaged)
		require.Equal(t, 1, status.Untracked)
	})
}

func TestRepositoryRemotes(t *testing.T) {
	t.Run("lists configured remotes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)

		hasOrigin, err := repo.HasRemote("origin")
		require.NoError(t, err)
		require.True(t, hasOrigin)

		hasUpstream, err := repo.HasRemote("upstream")
		require.NoError(t, err)
		require.False(t, hasUpstream)
	})
}

func TestFindRepoRoot(t *testing.T) {
	t.Run("finds the root from the repo directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		root, err := git.FindRepoRoot(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, root)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		tmpDir := t.TempDir()

		_, err := git.FindRepoRoot(tmpDir)
		require.Error(t, err)
	})
}
