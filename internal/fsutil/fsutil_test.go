// Package fsutil_test tests atomic writes, optional reads and directory checks.
// Related: internal/fsutil/fsutil.go
// Tags: fsutil, atomic-write, filesystem
package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	clierrors "github.com/royalbit/asimov/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existing *string
		content  string
	}{
		"creates new file":           {content: "rules:\n  must_ship: true\n"},
		"replaces existing file":     {existing: ptr("old\n"), content: "new\n"},
		"creates missing parent dir": {content: "x: 1\n"},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := filepath.Join(t.TempDir(), ".asimov")
			path := filepath.Join(dir, "sprint.yaml")
			if tt.existing != nil {
				require.NoError(t, os.MkdirAll(dir, 0o755))
				require.NoError(t, os.WriteFile(path, []byte(*tt.existing), 0o600))
			}

			require.NoError(t, WriteFileAtomic(path, []byte(tt.content)))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, FileMode, info.Mode().Perm())

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp file must not be left behind")
		})
	}
}

func TestWriteFileAtomic_UnwritableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err := WriteFileAtomic(filepath.Join(dir, "asimov.yaml"), []byte("x: 1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, clierrors.ErrDirectoryUnwritable))
}

func TestReadOptional(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "roadmap.yaml")

	got, err := ReadOptional(path)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, os.WriteFile(path, []byte("current: {}\n"), 0o644))
	got, err = ReadOptional(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "current: {}\n", *got)

	_, err = ReadOptional(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, clierrors.ErrIO))
}

func TestExistsAndDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "green.yaml")
	require.NoError(t, os.WriteFile(file, []byte("motto: x\n"), 0o644))

	assert.True(t, Exists(file))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing.yaml")))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, DirExists(filepath.Join(dir, "nope")))
}

func TestListYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.md", ".asimov-123.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x: 1\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	files, err := ListYAML(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}, files)
}

func ptr(s string) *string { return &s }
