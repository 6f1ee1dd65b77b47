package entry_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/braghook/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

func TestFilename(t *testing.T) {
	got := entry.Filename("/tmp/brags", day)
	assert.Equal(t, filepath.Join("/tmp/brags", "brag-2024-01-02.md"), got)
}

func TestEnsureFileSeedsTemplate(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "brag-2024-01-02.md")

	require.NoError(t, entry.EnsureFile(filename, day))

	content, err := entry.Read(filename)
	require.NoError(t, err)
	assert.Contains(t, content, "### 2024-01-02")
	assert.Contains(t, content, "Motivation summary:")
	assert.Contains(t, content, "Shout outs:")
	assert.Contains(t, content, "Improvements:")
}

func TestEnsureFileKeepsExistingContent(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "brag-2024-01-02.md")
	require.NoError(t, os.WriteFile(filename, []byte("already written"), 0o644))

	require.NoError(t, entry.EnsureFile(filename, day))

	content, err := entry.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, "already written", content)
}

func TestReadMissingFile(t *testing.T) {
	_, err := entry.Read(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListFindsBragFilesRecursively(t *testing.T) {
	workdir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workdir, "2023"), 0o755))
	for _, name := range []string{
		"brag-2024-01-02.md",
		filepath.Join("2023", "brag-2023-12-31.md"),
		"notes.md",
		"brag.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(workdir, name), []byte("x"), 0o644))
	}

	files, err := entry.List(workdir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("2023", "brag-2023-12-31.md"),
		"brag-2024-01-02.md",
	}, files)
}
