package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter88213/aeon3md/internal/errors"
)

func TestPath(t *testing.T) {
	tests := []struct {
		source string
		suffix string
		want   string
	}{
		{"/data/novel.aeon", "_report", "/data/novel_report.md"},
		{"/data/export.csv", "_outline", "/data/export_outline.md"},
		{"novel.aeon", "", "novel.md"},
		{"/data/my.book.aeon", "_x", "/data/my.book_x.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, filepath.FromSlash(tt.want), Path(filepath.FromSlash(tt.source), tt.suffix))
	}
}

func TestWriteFileNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, WriteFile(path, "hello"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	assert.NoFileExists(t, path+BackupSuffix)
}

func TestWriteFileBacksUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFile(path, "new"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "old", string(backup))
}

func TestWriteFileCannotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	// A non-empty directory in the backup's place blocks the rename.
	require.NoError(t, os.MkdirAll(filepath.Join(path+BackupSuffix, "keep"), 0o755))

	err := WriteFile(path, "new")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
	assert.Contains(t, err.Error(), "cannot overwrite")

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(got))
}

func TestWriteFileCannotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.md")

	err := WriteFile(path, "new")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileIO))
	assert.Contains(t, err.Error(), "cannot write")
}
