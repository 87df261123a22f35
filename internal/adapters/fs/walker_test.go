package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func collect(t *testing.T, walker *fs.Walker, root string, ignores []string) ([]string, error) {
	t.Helper()
	var paths []string
	for path, err := range walker.WalkFiles(root, ignores) {
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "index.js"), "x")
	require.NoError(t, os.Symlink("a.txt", filepath.Join(root, "link")))

	walker := fs.NewWalker()
	got, err := collect(t, walker, root, []string{"node_modules"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "link"),
		filepath.Join(root, "sub", "b.txt"),
	}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b.txt"), "b")

	walker := fs.NewWalker()
	var count int
	for _, err := range walker.WalkFiles(root, nil) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	walker := fs.NewWalker()
	got, err := collect(t, walker, filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.Empty(t, got)
}

func TestWalker_WalkFiles_UnreadableDir(t *testing.T) {
	skipIfRoot(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "b.txt"), "b")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	walker := fs.NewWalker()
	got, err := collect(t, walker, root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk directory")
	assert.Equal(t, []string{filepath.Join(root, "a.txt")}, got)
}
