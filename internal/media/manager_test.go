package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestManager_SaveAndList(t *testing.T) {
	m := newTestManager(t)

	path, err := m.Save("", "hello.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", path)

	files, err := m.List("")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "hello.txt", files[0].Name)
	assert.Equal(t, "hello.txt", files[0].Path)
	assert.False(t, files[0].IsDirectory)
	assert.Equal(t, int64(5), files[0].Size)
	assert.False(t, files[0].LastModified.IsZero())
}

func TestManager_ListSubdirectory(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.MkdirAll(filepath.Join(m.Root(), "images"), 0o755))

	_, err := m.Save("images", "a.png", strings.NewReader("png"))
	require.NoError(t, err)

	files, err := m.List("images")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "images/a.png", files[0].Path)

	root, err := m.List("")
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.True(t, root[0].IsDirectory)
}

func TestManager_ListRejectsFile(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Save("", "f.txt", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = m.List("f.txt")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestManager_PathTraversalRejected(t *testing.T) {
	m := newTestManager(t)

	_, err := m.List("../")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = m.Save("..", "evil.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = m.Save("", "../evil.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)

	err = m.Delete("../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = m.Rename("a.txt", "../../escape.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = m.Copy("../secret", "copy.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)

	// Deleting the root itself is not allowed
	err = m.Delete("")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestManager_RenameAndCopy(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Save("", "a.txt", strings.NewReader("content"))
	require.NoError(t, err)

	newPath, err := m.Rename("a.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b.txt", newPath)

	_, err = os.Stat(filepath.Join(m.Root(), "a.txt"))
	assert.True(t, os.IsNotExist(err))

	copied, err := m.Copy("b.txt", "c.txt")
	require.NoError(t, err)
	assert.Equal(t, "c.txt", copied)

	data, err := os.ReadFile(filepath.Join(m.Root(), "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestManager_DeleteFileAndDirectory(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Save("", "f.txt", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, m.Delete("f.txt"))

	nested := filepath.Join(m.Root(), "dir", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.txt"), []byte("x"), 0o644))

	require.NoError(t, m.Delete("dir"))
	_, err = os.Stat(filepath.Join(m.Root(), "dir"))
	assert.True(t, os.IsNotExist(err))
}

func TestManager_ListLogos(t *testing.T) {
	m := newTestManager(t)

	logosDir := filepath.Join(m.Root(), "logos")
	require.NoError(t, os.MkdirAll(logosDir, 0o755))
	for _, name := range []string{"a.png", "b.svg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(logosDir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(logosDir, "nested"), 0o755))

	logos, err := m.ListLogos()
	require.NoError(t, err)
	require.Len(t, logos, 2)
	assert.Equal(t, "a.png", logos[0].Name)
	assert.Equal(t, "/logos/a.png", logos[0].Path)
	assert.Equal(t, "b.svg", logos[1].Name)
}

func TestManager_ListLogosMissingDirectory(t *testing.T) {
	m := newTestManager(t)

	logos, err := m.ListLogos()
	require.NoError(t, err)
	assert.Empty(t, logos)
}
