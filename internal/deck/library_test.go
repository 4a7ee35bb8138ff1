package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T, decks ...string) *Library {
	t.Helper()
	dir := t.TempDir()
	for _, name := range decks {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
	}
	lib, err := OpenLibraryAt(dir)
	require.NoError(t, err)
	return lib
}

func TestOpenLibraryAt_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "flash")
	lib, err := OpenLibraryAt(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, lib.Dir())
	assert.DirExists(t, dir)
}

func TestOpenLibrary_XDGDataHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	lib, err := OpenLibrary()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "flash"), lib.Dir())
	assert.DirExists(t, lib.Dir())
}

func TestOpenLibraryAt_Unwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := OpenLibraryAt(filepath.Join(blocker, "flash"))
	assert.ErrorIs(t, err, ErrUnwritableDir)
}

func TestDecks_SortedNames(t *testing.T) {
	lib := newTestLibrary(t, "spanish", "algebra", "history")

	names, err := lib.Decks()
	require.NoError(t, err)
	assert.Equal(t, []string{"algebra", "history", "spanish"}, names)
}

func TestDecks_Empty(t *testing.T) {
	lib := newTestLibrary(t)

	_, err := lib.Decks()
	assert.ErrorIs(t, err, ErrNoDecks)
}

func TestResolve_ByName(t *testing.T) {
	lib := newTestLibrary(t, "algebra")

	path, name, err := lib.Resolve("algebra")
	require.NoError(t, err)
	assert.Equal(t, "algebra", name)
	assert.Equal(t, filepath.Join(lib.Dir(), "algebra.yaml"), path)

	// A .yaml suffix on the name is accepted too.
	path2, name2, err := lib.Resolve("algebra.yaml")
	require.NoError(t, err)
	assert.Equal(t, path, path2)
	assert.Equal(t, "algebra", name2)
}

func TestResolve_ByPath(t *testing.T) {
	lib := newTestLibrary(t, "algebra")

	outside := filepath.Join(t.TempDir(), "elsewhere.yaml")
	require.NoError(t, os.WriteFile(outside, []byte("[]\n"), 0o644))

	path, name, err := lib.Resolve(outside)
	require.NoError(t, err)
	assert.Equal(t, outside, path)
	assert.Equal(t, "elsewhere", name)
}

func TestResolve_NotFound(t *testing.T) {
	lib := newTestLibrary(t, "algebra")

	_, _, err := lib.Resolve("chemistry")
	assert.ErrorIs(t, err, ErrDeckNotFound)
}
