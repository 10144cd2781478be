package gitroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o750))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	got, err := Find(nested)
	require.NoError(t, err)

	// Resolve symlinks before comparing; t.TempDir may live under one.
	wantResolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantResolved, gotResolved)
}

func TestFindGitFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere\n"), 0o600))

	_, err := Find(root)
	assert.NoError(t, err)
}

func TestFindNotARepo(t *testing.T) {
	dir := t.TempDir()
	_, err := Find(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no git repository")
}
