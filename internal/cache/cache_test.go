package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir)

	require.NoError(t, err)
	require.NotNil(t, c)
	require.True(t, c.Changed("anything.lean", "deadbeef"))
}

func TestSaveAndLoad_RoundTripsHashes(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir)
	require.NoError(t, err)

	c.Record("a.lean", "hash-a")
	c.Record("b.lean", "hash-b")
	require.NoError(t, c.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)

	require.False(t, reloaded.Changed("a.lean", "hash-a"))
	require.True(t, reloaded.Changed("a.lean", "hash-a-different"))
	require.False(t, reloaded.Changed("b.lean", "hash-b"))
}

func TestLoad_CorruptCacheFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, DirName), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DirName, "hashes.json"), []byte("not json"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestHashFile_SameContentsSameHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lean")
	require.NoError(t, os.WriteFile(path, []byte("def f := 1"), 0o600))

	h1, err := HashFile(path)
	require.NoError(t, err)

	h2, err := HashFile(path)
	require.NoError(t, err)

	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
}

func TestHashFile_DifferentContentsDifferentHash(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.lean")
	pathB := filepath.Join(dir, "b.lean")
	require.NoError(t, os.WriteFile(pathA, []byte("def f := 1"), 0o600))
	require.NoError(t, os.WriteFile(pathB, []byte("def f := 2"), 0o600))

	hashA, err := HashFile(pathA)
	require.NoError(t, err)
	hashB, err := HashFile(pathB)
	require.NoError(t, err)

	require.NotEqual(t, hashA, hashB)
}

func TestHashFile_MissingFileErrors(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "missing.lean"))
	require.Error(t, err)
}

func TestCache_PruneDropsDeadEntries(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)

	c.Record("live.lean", "h1")
	c.Record("dead.lean", "h2")

	c.Prune(map[string]struct{}{"live.lean": {}})

	require.False(t, c.Changed("live.lean", "h1"))
	require.True(t, c.Changed("dead.lean", "h2"))
}
