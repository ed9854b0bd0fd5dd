package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, filepath.Join("data", "users_file.txt"), cfg.Store.UsersPath())
	assert.Equal(t, filepath.Join("data", "accounts_file.txt"), cfg.Store.AccountsPath())
	assert.Equal(t, filepath.Join("data", "transactions_file.txt"), cfg.Store.TransactionsPath())
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("EBANKING_STORE_DIR", "")
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("EBANKING_STORE_DIR"))
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"),
		[]byte("EBANKING_STORE_DIR=/var/lib/ebanking\nLOG_FORMAT=json\n"), 0o644))

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ebanking", cfg.Store.Dir)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/lib/ebanking/users_file.txt", cfg.Store.UsersPath())
}

func TestFindEnvFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.walk"), []byte("X=1\n"), 0o644))
	chdir(t, nested)

	found, err := FindEnvFile(".env.walk")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env.walk"), found)

	_, err = FindEnvFile(".env.missing-for-sure")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindUp_AbsolutePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/ebanking/.env", []byte("X=1\n"), 0o644))

	found, err := findUp(fs, "/etc/ebanking/.env")
	require.NoError(t, err)
	assert.Equal(t, "/etc/ebanking/.env", found)

	_, err = findUp(fs, "/etc/ebanking/other.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
