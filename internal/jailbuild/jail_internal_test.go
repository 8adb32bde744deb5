// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailbuild

import (
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aibor/jailrun/internal/jailconf"
	"github.com/aibor/jailrun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_CreateJailRollback(t *testing.T) {
	tests := []struct {
		name     string
		failWhen func(newpath string) bool
	}{
		{
			name:     "fstab commit fails",
			failWhen: func(newpath string) bool { return strings.HasSuffix(newpath, ".fstab") },
		},
		{
			name:     "config commit fails",
			failWhen: func(newpath string) bool { return strings.HasSuffix(newpath, ".conf") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			base := filepath.Join(tmpDir, "base")
			template := filepath.Join(tmpDir, "template")

			require.NoError(t, os.Mkdir(base, 0o755))
			require.NoError(t, os.Mkdir(template, 0o755))

			cfg, err := jailconf.New(filepath.Join(tmpDir, "www"), "www",
				nil, []netip.Addr{netip.MustParseAddr("2001:db8::2")},
				"www", []string{"/bin/sh"})
			require.NoError(t, err)

			builder := Builder{
				Owner: &sys.RecordingOwner{},
				rename: func(oldpath, newpath string) error {
					if tt.failWhen(newpath) {
						return assert.AnError
					}

					return os.Rename(oldpath, newpath)
				},
			}

			err = builder.CreateJail(base, template, cfg)
			require.ErrorIs(t, err, assert.AnError)

			for _, path := range []string{
				ConfigPath(cfg),
				ConfigPath(cfg) + tmpSuffix,
				FstabPath(cfg),
				FstabPath(cfg) + tmpSuffix,
			} {
				assert.NoFileExists(t, path)
			}

			assert.DirExists(t, cfg.Path(), "copied tree is kept")
		})
	}
}

func TestRollback(t *testing.T) {
	var calls []int

	var undo rollback

	undo.add(func() error {
		calls = append(calls, 1)
		return nil
	})
	undo.add(func() error {
		calls = append(calls, 2)
		return assert.AnError
	})
	undo.add(func() error {
		calls = append(calls, 3)
		return nil
	})

	undo.run()

	assert.Equal(t, []int{3, 2, 1}, calls)
}
