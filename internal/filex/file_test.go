package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesRelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("app/assets")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "app", "assets"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotResolved)
	require.True(t, filepath.IsAbs(got))

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_ExistingIsNoop(t *testing.T) {
	tmp := t.TempDir()
	marker := filepath.Join(tmp, "index.html")
	require.NoError(t, os.WriteFile(marker, []byte("hi"), 0o600))

	got, err := EnsureDir(tmp)
	require.NoError(t, err)
	require.Equal(t, tmp, got)

	_, err = os.Stat(marker)
	require.NoError(t, err)
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := EnsureDir(filepath.Join(file, "sub"))
	require.Error(t, err)
}
