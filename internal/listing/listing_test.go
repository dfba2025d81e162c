package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/domain"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "zeta"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Alpha"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beta.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Archive.zip"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))
	return dir
}

func names(entries []domain.FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestReadDirOrdersDirsFirst(t *testing.T) {
	dir := setupDir(t)
	svc := NewService(nil)

	entries, err := svc.ReadDir(dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "zeta", "Archive.zip", "beta.txt"}, names(entries))
}

func TestReadDirHiddenFiles(t *testing.T) {
	dir := setupDir(t)
	svc := NewService(nil)

	entries, err := svc.ReadDir(dir, false)
	require.NoError(t, err)
	assert.NotContains(t, names(entries), ".hidden")

	entries, err = svc.ReadDir(dir, true)
	require.NoError(t, err)
	assert.Contains(t, names(entries), ".hidden")
	for _, e := range entries {
		if e.Name == ".hidden" {
			assert.True(t, e.IsHidden)
		}
	}
}

func TestReadDirClassifiesEntries(t *testing.T) {
	dir := setupDir(t)
	svc := NewService(nil)

	entries, err := svc.ReadDir(dir, false)
	require.NoError(t, err)

	byName := make(map[string]domain.FileEntry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	assert.Equal(t, domain.CategoryFolder, byName["Alpha"].Category)
	assert.Equal(t, domain.CategoryArchive, byName["Archive.zip"].Category)
	assert.Equal(t, domain.CategoryDocument, byName["beta.txt"].Category)
	assert.Equal(t, ".zip", byName["Archive.zip"].Ext)
}

func TestReadDirMissingDirectory(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.ReadDir(filepath.Join(t.TempDir(), "nope"), false)
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.CategoryImage, Classify(".png"))
	assert.Equal(t, domain.CategoryVideo, Classify(".mkv"))
	assert.Equal(t, domain.CategoryAudio, Classify(".flac"))
	assert.Equal(t, domain.CategoryCode, Classify(".go"))
	assert.Equal(t, domain.CategoryOther, Classify(".xyz"))
	assert.Equal(t, domain.CategoryOther, Classify(""))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512B", FormatSize(512))
	assert.Equal(t, "1.0KB", FormatSize(1024))
	assert.Equal(t, "1.5MB", FormatSize(1536*1024))
	assert.Equal(t, "2.0GB", FormatSize(2*1024*1024*1024))
}
