package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/traQ-moderation/service/rbac/role"
	"github.com/traPtitech/traQ-moderation/testutils"
)

func TestInitData(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		repo := testutils.NewTestRepository(t)
		testutils.MustMakeUser(t, repo, "existing", role.User)

		file := filepath.Join(t.TempDir(), "init.yml")
		require.NoError(t, os.WriteFile(file, []byte(`users:
  alice:
    role: coordinator
  bob:
    role: moderator
  existing:
    role: admin
`), 0o600))

		require.NoError(t, initData(repo, file, zap.NewNop()))

		users, err := repo.GetUsers()
		require.NoError(t, err)
		roles := map[string]string{}
		for _, u := range users {
			roles[u.Name] = u.Role
		}
		assert.Equal(t, map[string]string{
			"alice":    role.Coordinator,
			"bob":      role.Moderator,
			"existing": role.User,
		}, roles)
	})

	t.Run("invalid role", func(t *testing.T) {
		t.Parallel()
		repo := testutils.NewTestRepository(t)

		file := filepath.Join(t.TempDir(), "init.yml")
		require.NoError(t, os.WriteFile(file, []byte("users:\n  carol:\n    role: owner\n"), 0o600))

		assert.Error(t, initData(repo, file, zap.NewNop()))
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		repo := testutils.NewTestRepository(t)

		file := filepath.Join(t.TempDir(), "init.yml")
		require.NoError(t, os.WriteFile(file, []byte("users:\n  \"a b\":\n    role: user\n"), 0o600))

		assert.Error(t, initData(repo, file, zap.NewNop()))
	})

	t.Run("file not found", func(t *testing.T) {
		t.Parallel()
		repo := testutils.NewTestRepository(t)

		assert.Error(t, initData(repo, filepath.Join(t.TempDir(), "none.yml"), zap.NewNop()))
	})
}

func TestConfig_getFileStorage(t *testing.T) {
	t.Parallel()

	var conf Config
	conf.Storage.Type = "memory"
	fs, err := conf.getFileStorage()
	require.NoError(t, err)
	assert.NotNil(t, fs)

	conf.Storage.Type = "local"
	conf.Storage.Local.Dir = t.TempDir()
	fs, err = conf.getFileStorage()
	require.NoError(t, err)
	assert.NotNil(t, fs)

	conf.Storage.Type = "swift"
	_, err = conf.getFileStorage()
	assert.Error(t, err)
}
