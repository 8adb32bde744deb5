// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/aibor/jailrun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(file, nil, 0o600))
	require.NoError(t, os.Symlink("file", link))

	owner := sys.Native{}

	t.Run("chmod", func(t *testing.T) {
		require.NoError(t, owner.Chmod(file, 0o640))

		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("chown to self", func(t *testing.T) {
		require.NoError(t, owner.Chown(file, os.Getuid(), os.Getgid()))
		require.NoError(t, owner.Lchown(link, os.Getuid(), os.Getgid()))
	})

	t.Run("lchmod does not follow", func(t *testing.T) {
		require.NoError(t, owner.Lchmod(link, 0o700))

		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing")

		err := owner.Chmod(missing, 0o644)

		var nativeErr *sys.NativeError
		require.ErrorAs(t, err, &nativeErr)
		assert.Equal(t, "chmod", nativeErr.Func)
		assert.Equal(t, missing, nativeErr.Path)
		assert.Equal(t, syscall.ENOENT, nativeErr.Errno)
	})
}

func TestUnixMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     fs.FileMode
		expected uint32
	}{
		{
			name:     "plain",
			mode:     0o644,
			expected: 0o644,
		},
		{
			name:     "directory type bits dropped",
			mode:     fs.ModeDir | 0o755,
			expected: 0o755,
		},
		{
			name:     "setuid",
			mode:     fs.ModeSetuid | 0o555,
			expected: 0o4555,
		},
		{
			name:     "setgid and sticky",
			mode:     fs.ModeSetgid | fs.ModeSticky | 0o777,
			expected: 0o3777,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sys.UnixMode(tt.mode))
		})
	}
}

func TestOwnership(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	info, err := os.Lstat(file)
	require.NoError(t, err)

	uid, gid, err := sys.Ownership(info)
	require.NoError(t, err)
	assert.Equal(t, os.Getuid(), uid)
	assert.Equal(t, os.Getgid(), gid)
}
