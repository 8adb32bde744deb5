// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/jailrun/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected cmd.Settings
		wantErr  bool
	}{
		{
			name:     "empty",
			expected: cmd.DefaultSettings(),
		},
		{
			name: "partial",
			content: "base_url: http://mirror.example/releases/\n" +
				"retries: 0\n" +
				"retry_interval: 500ms\n",
			expected: cmd.Settings{
				BaseURL:       "http://mirror.example/releases/",
				Archive:       cmd.DefaultArchive,
				Retries:       0,
				RetryInterval: 500 * time.Millisecond,
			},
		},
		{
			name: "complete",
			content: "base_url: http://mirror.example/\n" +
				"arch: arm64\n" +
				"release: 14.1-RELEASE\n" +
				"archive: kernel.txz\n" +
				"retries: 5\n" +
				"retry_interval: 1m\n",
			expected: cmd.Settings{
				BaseURL:       "http://mirror.example/",
				Arch:          "arm64",
				Release:       "14.1-RELEASE",
				Archive:       "kernel.txz",
				Retries:       5,
				RetryInterval: time.Minute,
			},
		},
		{
			name:    "unknown key",
			content: "mirror: http://mirror.example/\n",
			wantErr: true,
		},
		{
			name:    "invalid duration",
			content: "retry_interval: soon\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "jailrun.yaml", tt.content)

			actual, err := cmd.LoadSettings(path, false)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jailrun.yaml")

	t.Run("optional", func(t *testing.T) {
		actual, err := cmd.LoadSettings(path, true)
		require.NoError(t, err)
		assert.Equal(t, cmd.DefaultSettings(), actual)
	})

	t.Run("required", func(t *testing.T) {
		_, err := cmd.LoadSettings(path, false)
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
