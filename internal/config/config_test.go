package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := &Config{
		Version:  1,
		StartDir: "/tmp/somewhere",
		UISettings: UISettings{
			ShowHidden:    true,
			ShowSizes:     false,
			ConfirmDelete: true,
			DeleteToTrash: false,
		},
	}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.toml")
	svc := NewConfigService()

	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
	assert.FileExists(t, path)
}

func TestLoadFromPathRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.StartDir)
	assert.False(t, cfg.UISettings.ShowHidden)
	assert.True(t, cfg.UISettings.ShowSizes)
	assert.True(t, cfg.UISettings.ConfirmDelete)
	assert.True(t, cfg.UISettings.DeleteToTrash)
}
