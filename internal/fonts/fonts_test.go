package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.txt"))

	list, err := Scan(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Mono.OTF"}, list)

	list, err = Scan(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"))

	got, err := Find([]string{filepath.Join(dir, "nope"), dir}, "Google Sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"), got)
}

func TestFindDirectPathAndMiss(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.ttf")
	touch(t, path)

	got, err := Find(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Find([]string{dir}, "Roboto")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Find([]string{dir}, "  ")
	assert.ErrorIs(t, err, ErrNotFound)
}
