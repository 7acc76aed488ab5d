package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/git"
	"autosync.dev/autosync/testhelpers"
)

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("pushes the branch to a bare remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		err = git.Push(ctx, "origin", "main")
		require.NoError(t, err)

		localSHA, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		remoteSHA, err := testhelpers.RemoteRevision(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, localSHA, remoteSHA)
	})

	t.Run("fails when the remote is unreachable", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		err := scene.Repo.AddUnreachableRemote("origin")
		require.NoError(t, err)

		err = git.Push(ctx, "origin", "main")
		require.Error(t, err)
	})
}
