// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build freebsd && cgo

package jailctl

/*
#cgo LDFLAGS: -ljail
#include <sys/param.h>
#include <sys/jail.h>
#include <jail.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const paramSize = unsafe.Sizeof(C.struct_jailparam{})

// LibJail implements [ParamAPI] with libjail. It must be closed with
// [LibJail.Close] if the process image is not replaced.
type LibJail struct {
	params unsafe.Pointer
}

// NewLibJail allocates storage for [MaxParams] parameters.
func NewLibJail() (*LibJail, error) {
	params := C.calloc(C.size_t(MaxParams), C.size_t(paramSize))
	if params == nil {
		return nil, fmt.Errorf("allocate jail parameters: %w", syscall.ENOMEM)
	}

	return &LibJail{params: params}, nil
}

// Close releases the parameter storage.
func (l *LibJail) Close() error {
	C.free(l.params)
	l.params = nil

	return nil
}

func (l *LibJail) param(index int) (*C.struct_jailparam, error) {
	if index < 0 || index >= MaxParams {
		return nil, ErrTooManyParams
	}

	return (*C.struct_jailparam)(unsafe.Add(l.params, uintptr(index)*paramSize)), nil
}

func result(code C.int, err error) (int, error) {
	if code >= 0 {
		return int(code), nil
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		errno = syscall.EINVAL
	}

	return int(code), errno
}

func (l *LibJail) Init(index int, name string) (int, error) {
	param, err := l.param(index)
	if err != nil {
		return -1, err
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	code, err := C.jailparam_init(param, cname)

	return result(code, err)
}

func (l *LibJail) Import(index int, value string) (int, error) {
	param, err := l.param(index)
	if err != nil {
		return -1, err
	}

	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))

	code, err := C.jailparam_import(param, cvalue)

	return result(code, err)
}

func (l *LibJail) Set(count int, flags Flags) (int, error) {
	if count > MaxParams {
		return -1, ErrTooManyParams
	}

	code, err := C.jailparam_set((*C.struct_jailparam)(l.params), C.uint(count), C.int(flags))

	return result(code, err)
}

func (l *LibJail) Free(count int) {
	C.jailparam_free((*C.struct_jailparam)(l.params), C.uint(min(count, MaxParams)))
}

func (*LibJail) Exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv) //nolint:wrapcheck
}

func (*LibJail) StrError(errno syscall.Errno) string {
	return C.GoString(C.strerror(C.int(errno)))
}
