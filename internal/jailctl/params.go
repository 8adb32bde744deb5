// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailctl

import (
	"errors"
	"log/slog"
	"syscall"

	"github.com/aibor/jailrun/internal/jailconf"
)

// Names of the jail parameters set by [Controller.Start].
const (
	ParamPath     = "path"
	ParamName     = "name"
	ParamHostname = "host.hostname"
	ParamIPv4     = "ip4.addr"
	ParamIPv6     = "ip6.addr"
)

// MaxParams is the maximum number of parameters [Controller.Start] sets.
const MaxParams = 5

type param struct {
	name  string
	value string
}

// params returns the jail parameters for cfg in the order they are set. An
// empty address family contributes no parameter.
func params(cfg jailconf.Configuration) []param {
	result := []param{
		{ParamPath, cfg.Path()},
		{ParamName, cfg.Name().String()},
		{ParamHostname, cfg.Hostname()},
	}

	if ipv4 := cfg.IPv4(); len(ipv4) > 0 {
		result = append(result, param{ParamIPv4, jailconf.JoinAddrs(ipv4)})
	}

	if ipv6 := cfg.IPv6(); len(ipv6) > 0 {
		result = append(result, param{ParamIPv6, jailconf.JoinAddrs(ipv6)})
	}

	return result
}

// paramSet tracks the number of initialized parameter slots, so exactly
// these are released.
type paramSet struct {
	api   ParamAPI
	count int
}

func (s *paramSet) add(p param) error {
	index := s.count

	slog.Debug("Jail parameter",
		slog.Int("index", index),
		slog.String("name", p.name),
		slog.String("value", p.value))

	code, err := s.api.Init(index, p.name)
	if err != nil {
		return &ParamInitError{
			nativeFailure: s.failure("jailparam_init", code, err),
			Name:          p.name,
		}
	}

	s.count++

	code, err = s.api.Import(index, p.value)
	if err != nil {
		return &ParamImportError{
			nativeFailure: s.failure("jailparam_import", code, err),
			Name:          p.name,
			Value:         p.value,
		}
	}

	return nil
}

func (s *paramSet) failure(fn string, code int, err error) nativeFailure {
	var errno syscall.Errno
	_ = errors.As(err, &errno)

	return nativeFailure{
		Func:    fn,
		Code:    code,
		Errno:   errno,
		Message: s.api.StrError(errno),
		Err:     err,
	}
}

func (s *paramSet) release() {
	if s.count == 0 {
		return
	}

	s.api.Free(s.count)
	s.count = 0
}
