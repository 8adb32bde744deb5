// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/magiconair/properties"
)

// Property keys of the configuration file.
const (
	KeyPath         = "path"
	KeyName         = "name"
	KeyHostname     = "hostname"
	KeyStartCommand = "start_command"
	KeyIPv4         = "ipv4"
	KeyIPv6         = "ipv6"

	// KeyAddresses is used for errors concerning both address families.
	KeyAddresses = KeyIPv4 + "|" + KeyIPv6
)

// field is the outcome of validating a single property. Either value is
// usable or errs is non-empty.
type field[T any] struct {
	value T
	errs  ConfigErrors
}

type validator struct {
	path  string
	props *properties.Properties
}

func (v validator) fail(key, format string, args ...any) ConfigErrors {
	return ConfigErrors{{
		Key:     key,
		Path:    v.path,
		Message: fmt.Sprintf(format, args...),
	}}
}

func (v validator) lookup(key string) (string, bool) {
	value, exists := v.props.Get(key)
	value = strings.TrimSpace(value)

	return value, exists && value != ""
}

func (v validator) required(key, missingMsg string) field[string] {
	value, exists := v.lookup(key)
	if !exists {
		return field[string]{errs: v.fail(key, "%s", missingMsg)}
	}

	return field[string]{value: value}
}

func (v validator) name() field[Name] {
	raw := v.required(KeyName, "a jail name must be provided")
	if len(raw.errs) > 0 {
		return field[Name]{errs: raw.errs}
	}

	name, err := ParseName(raw.value)
	if err != nil {
		return field[Name]{errs: v.fail(KeyName, "%v", err)}
	}

	return field[Name]{value: name}
}

func (v validator) command() field[[]string] {
	raw := v.required(KeyStartCommand, "a jail start command must be provided")
	if len(raw.errs) > 0 {
		return field[[]string]{errs: raw.errs}
	}

	return field[[]string]{value: strings.Fields(raw.value)}
}

// addresses validates every address of the whitespace separated list
// independently, so each invalid address yields its own error.
func (v validator) addresses(key string, family func(netip.Addr) bool) field[[]netip.Addr] {
	var result field[[]netip.Addr]

	raw, _ := v.lookup(key)

	for _, text := range strings.Fields(raw) {
		addr, err := netip.ParseAddr(text)
		if err == nil && !family(addr) {
			err = errWrongFamily
		}

		if err != nil {
			result.errs = append(result.errs,
				v.fail(key, "jail address is invalid: %s: %v", text, err)...)

			continue
		}

		result.value = append(result.value, addr)
	}

	return result
}

var errWrongFamily = errors.New("wrong address family")

func isIPv4(addr netip.Addr) bool {
	return addr.Is4()
}

func isIPv6(addr netip.Addr) bool {
	return addr.Is6() && !addr.Is4In6()
}

// Validate builds a [Configuration] from the given properties. All fields
// are validated independently and all errors are returned together as
// [ConfigErrors]. The path is only used for error reporting.
func Validate(path string, props *properties.Properties) (Configuration, error) {
	v := validator{path: path, props: props}

	root := v.required(KeyPath, "a jail path must be provided")
	name := v.name()
	hostname := v.required(KeyHostname, "a jail hostname must be provided")
	command := v.command()
	ipv4 := v.addresses(KeyIPv4, isIPv4)
	ipv6 := v.addresses(KeyIPv6, isIPv6)

	var errs ConfigErrors

	for _, fieldErrs := range []ConfigErrors{
		root.errs,
		name.errs,
		hostname.errs,
		command.errs,
		ipv4.errs,
		ipv6.errs,
	} {
		errs = append(errs, fieldErrs...)
	}

	_, hasIPv4 := v.lookup(KeyIPv4)
	_, hasIPv6 := v.lookup(KeyIPv6)

	if !hasIPv4 && !hasIPv6 {
		errs = append(errs, v.fail(KeyAddresses, "%v", ErrNoAddresses)...)
	}

	if len(errs) > 0 {
		return Configuration{}, errs
	}

	cfg, err := New(
		root.value,
		name.value,
		ipv4.value,
		ipv6.value,
		hostname.value,
		command.value,
	)
	if err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
