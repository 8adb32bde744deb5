// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"io/fs"
	"syscall"
	"testing"

	"github.com/aibor/jailrun/internal/sys"
	"github.com/stretchr/testify/assert"
)

func TestNativeError(t *testing.T) {
	err := &sys.NativeError{
		Func:  "lchown",
		Path:  "/jails/www/bin",
		Errno: syscall.EPERM,
	}

	assert.Equal(t,
		"lchown /jails/www/bin: EPERM (1): operation not permitted",
		err.Error(),
	)
	assert.ErrorIs(t, err, &sys.NativeError{})
	assert.ErrorIs(t, err, syscall.EPERM)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, assert.AnError, &sys.NativeError{})
}
