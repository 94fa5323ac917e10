package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
}

func TestSaveConfigCreatesDirectoriesWithSecurePerms(t *testing.T) {
	withTempHome(t)

	cfg := Config{APIKey: "test-key"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withTempHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadRejectsOpenPermissions(t *testing.T) {
	withTempHome(t)

	cfg := Config{APIKey: "key"}
	require.NoError(t, cfg.Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions too open")
}

func TestSaveLoadRoundtrip(t *testing.T) {
	withTempHome(t)

	original := Config{
		APIKey:           "khb_verylongkeystring12345",
		Username:         "alice",
		BaseURL:          "http://kb.internal:8080",
		SidebarCollapsed: true,
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &original, loaded)
}

func TestSidebarFlagRoundTrip(t *testing.T) {
	withTempHome(t)

	cfg := Config{APIKey: "key", SidebarCollapsed: false}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.False(t, loaded.SidebarCollapsed)

	loaded.SidebarCollapsed = true
	require.NoError(t, loaded.Save())

	again, err := Load()
	require.NoError(t, err)
	assert.True(t, again.SidebarCollapsed)
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	withTempHome(t)

	cfg := Config{Username: "alice"}
	require.NoError(t, cfg.Save())

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}
