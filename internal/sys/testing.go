// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"io/fs"
	"os"
	"sync"
)

// OwnerCall is a single call recorded by [RecordingOwner].
type OwnerCall struct {
	Func string
	Path string
	UID  int
	GID  int
	Mode fs.FileMode
}

// RecordingOwner records all ownership and permission calls. Ownership
// changes are not applied, so it can be used without privileges. Permission
// changes of non-links are applied with [os.Chmod].
type RecordingOwner struct {
	// Err is returned by every call, if set.
	Err error

	mu    sync.Mutex
	calls []OwnerCall
}

// Calls returns a copy of all recorded calls in order.
func (o *RecordingOwner) Calls() []OwnerCall {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]OwnerCall(nil), o.calls...)
}

// CallsFor returns the recorded calls for the given path in order.
func (o *RecordingOwner) CallsFor(path string) []OwnerCall {
	var calls []OwnerCall

	for _, call := range o.Calls() {
		if call.Path == path {
			calls = append(calls, call)
		}
	}

	return calls
}

func (o *RecordingOwner) record(call OwnerCall) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls = append(o.calls, call)

	return o.Err
}

func (o *RecordingOwner) Chown(path string, uid, gid int) error {
	return o.record(OwnerCall{Func: "chown", Path: path, UID: uid, GID: gid})
}

func (o *RecordingOwner) Chmod(path string, mode fs.FileMode) error {
	if err := o.record(OwnerCall{Func: "chmod", Path: path, Mode: mode}); err != nil {
		return err
	}

	return os.Chmod(path, mode) //nolint:wrapcheck
}

func (o *RecordingOwner) Lchown(path string, uid, gid int) error {
	return o.record(OwnerCall{Func: "lchown", Path: path, UID: uid, GID: gid})
}

func (o *RecordingOwner) Lchmod(path string, mode fs.FileMode) error {
	return o.record(OwnerCall{Func: "lchmod", Path: path, Mode: mode})
}
