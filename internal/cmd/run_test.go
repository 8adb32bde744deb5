// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/jailrun/internal/archive"
	"github.com/aibor/jailrun/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	exitCode := cmd.Run(context.Background(), args, cmd.IO{
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return exitCode, stdout.String(), stderr.String()
}

func TestRunVersion(t *testing.T) {
	exitCode, stdout, _ := run(t, "version")

	assert.Equal(t, cmd.ExitOK, exitCode)
	assert.Contains(t, stdout, "Version: ")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown flag",
			args: []string{"version", "--unknown"},
		},
		{
			name: "invalid log level",
			args: []string{"--log-level", "loud", "version"},
		},
		{
			name: "invalid archive format",
			args: []string{
				"unpack",
				"--archive", "base.zip",
				"--archive-format", "zip",
				"--target", "/tmp/unpacked",
			},
		},
		{
			name: "unexpected argument",
			args: []string{"version", "extra"},
		},
		{
			name: "start without file",
			args: []string{"start"},
		},
		{
			name: "create-jail-base without flags",
			args: []string{"create-jail-base"},
		},
		{
			name: "unpack without target",
			args: []string{"unpack", "--archive", "x.txz"},
		},
		{
			name: "empty archive path",
			args: []string{"unpack", "--archive", "", "--target", "/tmp/unpacked"},
		},
		{
			name: "archive format not inferable",
			args: []string{
				"create-jail-base",
				"--archive", "base.zip",
				"--base", "/jails/base",
				"--template", "/jails/template",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, _, stderr := run(t, tt.args...)

			assert.Equal(t, cmd.ExitUsage, exitCode, "stderr: %s", stderr)
		})
	}
}

func TestRunStartInvalidConfig(t *testing.T) {
	path := writeFile(t, "a.conf", "path = /jails/a\nname = a\n")

	exitCode, _, stderr := run(t, "start", "--file", path)

	assert.Equal(t, cmd.ExitError, exitCode)
	assert.Contains(t, stderr, path+": hostname: a jail hostname must be provided")
	assert.Contains(t, stderr, path+": start_command: a jail start command must be provided")
	assert.Contains(t, stderr, path+": ipv4|ipv6: ")
}

func TestRunUnpack(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "files.cpio")
	target := filepath.Join(dir, "target")

	archive.WriteTestArchive(t, archivePath, archive.FormatCPIO, []archive.TestEntry{
		{
			Name: "etc",
			Kind: archive.KindDirectory,
			UID:  os.Getuid(),
			GID:  os.Getgid(),
			Mode: 0o755,
		},
		{
			Name: "etc/motd",
			Kind: archive.KindFile,
			Body: []byte("hello\n"),
			UID:  os.Getuid(),
			GID:  os.Getgid(),
			Mode: 0o644,
		},
	})

	require.NoError(t, os.Mkdir(target, 0o755))

	exitCode, _, stderr := run(t, "unpack", "--archive", archivePath, "--target", target)
	require.Equal(t, cmd.ExitOK, exitCode, "stderr: %s", stderr)

	content, err := os.ReadFile(filepath.Join(target, "etc", "motd"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestRunDownloadBaseArchive(t *testing.T) {
	serverDir := t.TempDir()
	releaseDir := filepath.Join(serverDir, "releases", "amd64", "14.1-RELEASE")
	content := bytes.Repeat([]byte("base"), 4096)

	require.NoError(t, os.MkdirAll(releaseDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(releaseDir, "base.txz"), content, 0o644))

	server := httptest.NewServer(http.FileServer(http.Dir(serverDir)))
	t.Cleanup(server.Close)

	settings := writeFile(t, "jailrun.yaml",
		"base_url: "+server.URL+"/releases/\n"+
			"arch: amd64\n"+
			"release: 14.1-RELEASE\n"+
			"retries: 1\n")
	output := filepath.Join(t.TempDir(), "base.txz")

	exitCode, _, stderr := run(t,
		"--settings", settings,
		"download-base-archive",
		"--archive", output,
	)
	require.Equal(t, cmd.ExitOK, exitCode, "stderr: %s", stderr)

	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, content, actual)
	assert.Contains(t, stderr, "Download completed")

	assert.NoFileExists(t, output+".tmp", "temporary file should be renamed")
}

func TestRunDownloadBaseArchiveMissingSettings(t *testing.T) {
	exitCode, _, _ := run(t,
		"--settings", filepath.Join(t.TempDir(), "missing.yaml"),
		"download-base-archive",
		"--archive", filepath.Join(t.TempDir(), "base.txz"),
	)

	assert.Equal(t, cmd.ExitError, exitCode)
}
