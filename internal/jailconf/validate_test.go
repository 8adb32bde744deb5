// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf_test

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/jailrun/internal/jailconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorKeys(t *testing.T, err error) []string {
	t.Helper()

	var errs jailconf.ConfigErrors
	require.ErrorAs(t, err, &errs)

	keys := make([]string, len(errs))
	for idx, e := range errs {
		assert.Equal(t, "www.conf", e.Path)
		keys[idx] = e.Key
	}

	return keys
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKeys []string
	}{
		{
			name:  "empty",
			input: "",
			expectedKeys: []string{
				"path", "name", "hostname", "start_command", "ipv4|ipv6",
			},
		},
		{
			name:  "blank values",
			input: "path=\nname=  \nhostname=\nstart_command=\nipv4=\nipv6=\n",
			expectedKeys: []string{
				"path", "name", "hostname", "start_command", "ipv4|ipv6",
			},
		},
		{
			name: "invalid name",
			input: "path=/jails/www\nname=w w\nhostname=www\n" +
				"start_command=/bin/sh\nipv4=10.0.0.2\n",
			expectedKeys: []string{"name"},
		},
		{
			name: "one error per invalid address",
			input: "path=/jails/www\nname=www\nhostname=www\n" +
				"start_command=/bin/sh\n" +
				"ipv4=10.0.0.2 10.0.0.300 ::1 nope\n" +
				"ipv6=::1 10.0.0.2\n",
			expectedKeys: []string{"ipv4", "ipv4", "ipv4", "ipv6"},
		},
		{
			name:         "everything wrong",
			input:        "name=?\nipv6=zzz\n",
			expectedKeys: []string{"path", "name", "hostname", "start_command", "ipv6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jailconf.Parse("www.conf", []byte(tt.input))
			assert.Equal(t, tt.expectedKeys, errorKeys(t, err))
		})
	}
}

func TestParse_Valid(t *testing.T) {
	input := `# web jail
path = /jails/www
name = www
hostname = www.example.org
start_command = /bin/sh /etc/rc
ipv6 = 2001:db8::2   2001:db8::3
`

	cfg, err := jailconf.Parse("www.conf", []byte(input))
	require.NoError(t, err)

	assert.Equal(t, "/jails/www", cfg.Path())
	assert.Equal(t, jailconf.Name("www"), cfg.Name())
	assert.Equal(t, "www.example.org", cfg.Hostname())
	assert.Equal(t, []string{"/bin/sh", "/etc/rc"}, cfg.StartCommand())
	assert.Empty(t, cfg.IPv4())
	assert.Equal(t, []netip.Addr{
		netip.MustParseAddr("2001:db8::2"),
		netip.MustParseAddr("2001:db8::3"),
	}, cfg.IPv6())
}

func TestConfigErrors(t *testing.T) {
	_, err := jailconf.Parse("www.conf", []byte("name=www\n"))
	require.ErrorIs(t, err, &jailconf.ConfigError{})

	assert.Equal(t,
		"www.conf: path: a jail path must be provided\n"+
			"www.conf: hostname: a jail hostname must be provided\n"+
			"www.conf: start_command: a jail start command must be provided\n"+
			"www.conf: ipv4|ipv6: jails must have at least one IPv4 or IPv6 address",
		err.Error(),
	)
}

func TestMarshal_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ipv4 []netip.Addr
		ipv6 []netip.Addr
	}{
		{
			name: "ipv4 only",
			ipv4: []netip.Addr{netip.MustParseAddr("10.0.0.2")},
		},
		{
			name: "ipv6 only",
			ipv6: []netip.Addr{netip.MustParseAddr("2001:db8::2")},
		},
		{
			name: "both",
			ipv4: []netip.Addr{
				netip.MustParseAddr("10.0.0.2"),
				netip.MustParseAddr("192.168.1.1"),
			},
			ipv6: []netip.Addr{netip.MustParseAddr("2001:db8::2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := jailconf.New(
				"/jails/web server",
				"www",
				tt.ipv4,
				tt.ipv6,
				"www.example.org",
				[]string{"/usr/sbin/daemon", "-f", "/bin/sh", "C:\\x=y"},
			)
			require.NoError(t, err)

			data, err := jailconf.Marshal(cfg)
			require.NoError(t, err)

			parsed, err := jailconf.Parse("www.conf", data)
			require.NoError(t, err)

			assert.True(t, cfg.Equal(parsed), "round trip: %s", data)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "www.conf")

	_, err := jailconf.Load(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	content := "path=/jails/www\nname=www\nhostname=www\n" +
		"start_command=/bin/sh\nipv4=10.0.0.2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := jailconf.Load(path)
	require.NoError(t, err)
	assert.Equal(t, jailconf.Name("www"), cfg.Name())
}
