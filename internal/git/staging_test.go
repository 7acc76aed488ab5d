package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/testhelpers"
)

func TestStageAll(t *testing.T) {
	ctx := context.Background()

	t.Run("stages all changes including untracked", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// Create unstaged change
		err := scene.Repo.CreateChange("new content", "test", true)
		require.NoError(t, err)

		// Create untracked file
		err = scene.Repo.CreateChange("untracked", "newfile", true)
		require.NoError(t, err)

		// Verify no staged changes initially
		hasStaged, err := git.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.False(t, hasStaged)

		// Stage all
		err = git.StageAll(ctx)
		require.NoError(t, err)

		// Verify changes are staged
		hasStaged, err = git.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.True(t, hasStaged)
	})

	t.Run("stages deletions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		err := scene.Repo.RunGitCommand("rm", "init_test.txt")
		require.NoError(t, err)

		err = git.StageAll(ctx)
		require.NoError(t, err)

		hasStaged, err := git.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.True(t, hasStaged)
	})
}

func TestHasStagedChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("returns false when no staged changes", func(t *testing.T) {
		_ = testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		hasStaged, err := git.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.False(t, hasStaged)
	})

	t.Run("returns true when changes are staged", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// Create and stage change
		err := scene.Repo.CreateChange("new content", "test", false)
		require.NoError(t, err)

		hasStaged, err := git.HasStagedChanges(ctx)
		require.NoError(t, err)
		require.True(t, hasStaged)
	})
}

func TestHasUnstagedChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("returns false when no unstaged changes", func(t *testing.T) {
		_ = testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		hasUnstaged, err := git.HasUnstagedChanges(ctx)
		require.NoError(t, err)
		require.False(t, hasUnstaged)
	})

	t.Run("returns true when unstaged changes exist", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "test")
		})

		// Modify tracked file without staging
		err := scene.Repo.CreateChange("modified", "test", true)
		require.NoError(t, err)

		hasUnstaged, err := git.HasUnstagedChanges(ctx)
		require.NoError(t, err)
		require.True(t, hasUnstaged)
	})
}

func TestHasUntrackedFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("returns false when no untracked files", func(t *testing.T) {
		_ = testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		hasUntracked, err := git.HasUntrackedFiles(ctx)
		require.NoError(t, err)
		require.False(t, hasUntracked)
	})

	t.Run("returns true when untracked files exist", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		err := scene.Repo.CreateChange("content", "newfile", true)
		require.NoError(t, err)

		hasUntracked, err := git.HasUntrackedFiles(ctx)
		require.NoError(t, err)
		require.True(t, hasUntracked)
	})
}
