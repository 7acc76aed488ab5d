package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/testhelpers"
)

func TestPullFastForward(t *testing.T) {
	ctx := context.Background()

	t.Run("reports up to date when nothing changed on the remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.RunGitCommand("push", "-u", "origin", "main"))

		result, err := git.PullFastForward(ctx, "origin", "main")
		require.NoError(t, err)
		require.Equal(t, git.PullUnneeded, result)
	})

	t.Run("fails when the remote does not exist", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		err := scene.Repo.AddUnreachableRemote("origin")
		require.NoError(t, err)

		_, err = git.PullFastForward(ctx, "origin", "main")
		require.Error(t, err)
	})
}
