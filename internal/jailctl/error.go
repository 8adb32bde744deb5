// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailctl

import (
	"fmt"
	"strings"
	"syscall"
)

// nativeFailure is the common part of all errors of native calls.
type nativeFailure struct {
	// Func is the name of the failed native function.
	Func string
	// Code is the raw return value of the native function.
	Code int
	// Errno is the OS error number set by the native function.
	Errno syscall.Errno
	// Message is the text for Errno as returned by [ParamAPI.StrError].
	Message string
	// Err is the error returned by the [ParamAPI].
	Err error
}

func (f nativeFailure) String() string {
	return fmt.Sprintf("%s returned %d: %s (errno %d)",
		f.Func, f.Code, f.Message, int(f.Errno))
}

// ParamInitError is returned if a jail parameter can not be initialized.
type ParamInitError struct {
	nativeFailure

	Name string
}

// Error implements the [error] interface.
func (e *ParamInitError) Error() string {
	return fmt.Sprintf("prepare jail parameter %s: %s", e.Name, e.nativeFailure)
}

// Is implements the [errors.Is] interface.
func (*ParamInitError) Is(other error) bool {
	_, ok := other.(*ParamInitError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParamInitError) Unwrap() error {
	return e.Err
}

// ParamImportError is returned if the value of a jail parameter is rejected.
type ParamImportError struct {
	nativeFailure

	Name  string
	Value string
}

// Error implements the [error] interface.
func (e *ParamImportError) Error() string {
	return fmt.Sprintf("import jail parameter %s=%q: %s",
		e.Name, e.Value, e.nativeFailure)
}

// Is implements the [errors.Is] interface.
func (*ParamImportError) Is(other error) bool {
	_, ok := other.(*ParamImportError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParamImportError) Unwrap() error {
	return e.Err
}

// ConfigureError is returned if the kernel rejects the jail.
type ConfigureError struct {
	nativeFailure
}

// Error implements the [error] interface.
func (e *ConfigureError) Error() string {
	return "configure jail: " + e.nativeFailure.String()
}

// Is implements the [errors.Is] interface.
func (*ConfigureError) Is(other error) bool {
	_, ok := other.(*ConfigureError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ConfigureError) Unwrap() error {
	return e.Err
}

// ExecError is returned if the start command can not be executed.
type ExecError struct {
	Command []string
	// Message is the text for the error number of Err, if any.
	Message string
	Err     error
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("execute start command %q: %v",
		strings.Join(e.Command, " "), e.Err)
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}
