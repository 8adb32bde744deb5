// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import (
	"bytes"
	"fmt"
	"net/netip"
	"os"
	"strings"

	"github.com/magiconair/properties"
)

var loader = properties.Loader{
	Encoding:         properties.UTF8,
	DisableExpansion: true,
}

// Parse parses the properties file content and validates it. The path is
// only used for error reporting.
func Parse(path string, data []byte) (Configuration, error) {
	props, err := loader.LoadBytes(data)
	if err != nil {
		return Configuration{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return Validate(path, props)
}

// Load reads and validates the properties file at path.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(path, data)
}

// Marshal returns the properties file representation of the given
// configuration. Empty address lists are omitted.
//
// Lists are written whitespace separated, so start command arguments
// containing whitespace do not survive a round trip.
func Marshal(cfg Configuration) ([]byte, error) {
	props := properties.NewProperties()
	props.DisableExpansion = true
	props.WriteSeparator = "="

	values := [][2]string{
		{KeyPath, cfg.Path()},
		{KeyName, cfg.Name().String()},
		{KeyHostname, cfg.Hostname()},
		{KeyStartCommand, strings.Join(cfg.StartCommand(), " ")},
	}

	if ipv4 := cfg.IPv4(); len(ipv4) > 0 {
		values = append(values, [2]string{KeyIPv4, JoinAddrs(ipv4)})
	}

	if ipv6 := cfg.IPv6(); len(ipv6) > 0 {
		values = append(values, [2]string{KeyIPv6, JoinAddrs(ipv6)})
	}

	for _, kv := range values {
		if _, _, err := props.Set(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("set %s: %w", kv[0], err)
		}
	}

	var buf bytes.Buffer

	if _, err := props.Write(&buf, properties.UTF8); err != nil {
		return nil, fmt.Errorf("write properties: %w", err)
	}

	return buf.Bytes(), nil
}

// JoinAddrs returns the canonical text form of all addresses separated by a
// single space.
func JoinAddrs(addrs []netip.Addr) string {
	texts := make([]string, len(addrs))
	for idx, addr := range addrs {
		texts[idx] = addr.String()
	}

	return strings.Join(texts, " ")
}
