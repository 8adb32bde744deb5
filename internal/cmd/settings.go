// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/aibor/jailrun/internal/download"
	"github.com/aibor/jailrun/internal/sys"
	"gopkg.in/yaml.v3"
)

// Settings defaults.
const (
	DefaultSettingsFile = "/usr/local/etc/jailrun.yaml"
	DefaultBaseURL      = "http://ftp.freebsd.org/pub/FreeBSD/releases/"
	DefaultArchive      = "base.txz"
)

// Settings are the download settings. They are read from a YAML file and
// may be overridden by flags.
type Settings struct {
	BaseURL string `yaml:"base_url"`
	// Arch and Release default to the running system if empty.
	Arch    string `yaml:"arch"`
	Release string `yaml:"release"`
	Archive string `yaml:"archive"`
	// Retries is the maximum number of download attempts. 0 means
	// unlimited.
	Retries       int           `yaml:"retries"`
	RetryInterval time.Duration `yaml:"retry_interval"`
}

// DefaultSettings returns the settings used if no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:       DefaultBaseURL,
		Archive:       DefaultArchive,
		Retries:       download.DefaultMaxAttempts,
		RetryInterval: download.DefaultInterval,
	}
}

// LoadSettings decodes the YAML file at path on top of [DefaultSettings].
// Unknown keys are rejected. If optional is true, a missing file is not an
// error.
func LoadSettings(path string, optional bool) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(&settings)
	if err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}

	return settings, nil
}

// override replaces all fields whose flag has been set.
func (s *Settings) override(changed func(name string) bool, flags Settings) {
	if changed(flagBaseURL) {
		s.BaseURL = flags.BaseURL
	}

	if changed(flagArch) {
		s.Arch = flags.Arch
	}

	if changed(flagRelease) {
		s.Release = flags.Release
	}

	if changed(flagFetchArchive) {
		s.Archive = flags.Archive
	}

	if changed(flagRetry) {
		s.Retries = flags.Retries
	}

	if changed(flagRetryInterval) {
		s.RetryInterval = flags.RetryInterval
	}
}

// resolve fills architecture and release from the running system, if unset.
func (s *Settings) resolve() error {
	if s.Arch == "" {
		arch, err := sys.NativeArch()
		if err != nil {
			return fmt.Errorf("system architecture: %w", err)
		}

		s.Arch = string(arch)
	}

	if s.Release == "" {
		release, err := sys.Release()
		if err != nil {
			return fmt.Errorf("system release: %w", err)
		}

		s.Release = release
	}

	return nil
}
