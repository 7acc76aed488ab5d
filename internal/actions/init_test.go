package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/actions"
	"autosync.dev/autosync/internal/config"
	"autosync.dev/autosync/testhelpers"
)

func TestInitAction(t *testing.T) {
	t.Run("writes config from flags without prompting", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		rt := newTestRuntime(t, scene)
		err := actions.InitAction(actions.InitOptions{
			Remote: "upstream",
			Branch: "trunk",
		}, rt)
		require.NoError(t, err)

		require.True(t, config.IsInitialized(scene.Dir))

		remote, err := config.GetRemote(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)

		branch, err := config.GetBranch(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "trunk", branch)
	})

	t.Run("refuses to overwrite without force when prompts are disabled", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		rt := newTestRuntime(t, scene)
		require.NoError(t, actions.InitAction(actions.InitOptions{
			Remote: "origin",
			Branch: "main",
		}, rt))

		err := actions.InitAction(actions.InitOptions{
			Remote: "upstream",
			Branch: "trunk",
		}, rt)
		require.Error(t, err)

		// Force overwrites
		require.NoError(t, actions.InitAction(actions.InitOptions{
			Remote: "upstream",
			Branch: "trunk",
			Force:  true,
		}, rt))

		remote, err := config.GetRemote(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)
	})
}
