// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import (
	"fmt"
)

// HTTPError is returned if a request fails or the server responds with an
// error status.
type HTTPError struct {
	Method string
	URL    string
	Status int
	Err    error
}

// Error implements the [error] interface.
func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Method, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}

	return msg + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*HTTPError) Is(other error) bool {
	_, ok := other.(*HTTPError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// TruncatedError is returned if the number of received bytes does not match
// the expected number after the response body ended.
type TruncatedError struct {
	// ExpectedTotal is the size of the remote file.
	ExpectedTotal int64
	// ReceivedTotal is the size of the local file after this attempt.
	ReceivedTotal int64
	// ExpectedNow is the number of bytes announced for this attempt. It is
	// -1 if the server did not announce a length.
	ExpectedNow int64
	// ReceivedNow is the number of bytes received in this attempt.
	ReceivedNow int64
}

// Error implements the [error] interface.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf(
		"downloaded file was truncated: expected %d bytes in total, "+
			"received %d; expected %d bytes now, received %d",
		e.ExpectedTotal, e.ReceivedTotal, e.ExpectedNow, e.ReceivedNow,
	)
}

// Is implements the [errors.Is] interface.
func (*TruncatedError) Is(other error) bool {
	_, ok := other.(*TruncatedError)
	return ok
}

// AttemptsExhaustedError is returned by [Fetch] if all attempts failed. It
// wraps the error of the last attempt.
type AttemptsExhaustedError struct {
	Attempts int
	Err      error
}

// Error implements the [error] interface.
func (e *AttemptsExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

// Is implements the [errors.Is] interface.
func (*AttemptsExhaustedError) Is(other error) bool {
	_, ok := other.(*AttemptsExhaustedError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *AttemptsExhaustedError) Unwrap() error {
	return e.Err
}
