// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import (
	"strings"
)

// ConfigError describes a single invalid or missing field of a configuration
// file.
type ConfigError struct {
	// Key is the property key the error refers to. Errors concerning both
	// address families use the key "ipv4|ipv6".
	Key     string
	Path    string
	Message string
}

// Error implements the [error] interface.
func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Key + ": " + e.Message
}

// Is implements the [errors.Is] interface.
func (*ConfigError) Is(other error) bool {
	_, ok := other.(*ConfigError)
	return ok
}

// ConfigErrors is the list of all errors found while validating a
// configuration file.
type ConfigErrors []*ConfigError

// Error implements the [error] interface.
func (e ConfigErrors) Error() string {
	msgs := make([]string, len(e))
	for idx, err := range e {
		msgs[idx] = err.Error()
	}

	return strings.Join(msgs, "\n")
}

// Unwrap returns all contained errors, so [errors.Is] and [errors.As] match
// any of them.
func (e ConfigErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for idx, err := range e {
		errs[idx] = err
	}

	return errs
}
