package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/cli"
	"autosync.dev/autosync/internal/config"
	"autosync.dev/autosync/testhelpers"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := cli.NewRootCmd("test", "none", "unknown")
	root.SetArgs(args)
	return root.Execute()
}

func TestSyncCommand(t *testing.T) {
	t.Run("pushes a new file to the default remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateFile("a.txt", "hello", true))

		err = runCommand(t, "-C", scene.Dir, "-q", "sync")
		require.NoError(t, err)

		message, err := testhelpers.RemoteHeadMessage(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, "Auto commit from script", message)
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		err := runCommand(t, "-C", t.TempDir(), "-q", "sync")
		require.Error(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("set and get roundtrip", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, runCommand(t, "-C", scene.Dir, "-q", "config", "remote", "upstream"))
		require.NoError(t, runCommand(t, "-C", scene.Dir, "-q", "config", "clean", "*.pyc,__pycache__"))

		remote, err := config.GetRemote(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "upstream", remote)

		clean, err := config.GetCleanPatterns(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, []string{"*.pyc", "__pycache__"}, clean)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		err := runCommand(t, "-C", scene.Dir, "-q", "config", "nope")
		require.Error(t, err)
	})
}

func TestConfigResolution(t *testing.T) {
	t.Run("flag overrides config file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})
		bareDir, err := scene.Repo.CreateBareRemote("mirror")
		require.NoError(t, err)
		require.NoError(t, config.SetRemote(scene.Dir, "does-not-exist"))
		require.NoError(t, scene.Repo.CreateFile("a.txt", "hello", true))

		err = runCommand(t, "-C", scene.Dir, "-q", "sync", "--remote", "mirror")
		require.NoError(t, err)

		message, err := testhelpers.RemoteHeadMessage(bareDir, "main")
		require.NoError(t, err)
		require.Equal(t, "Auto commit from script", message)
	})
}
