// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package download

import (
	"time"

	"golang.org/x/time/rate"
)

// RateFunc receives progress together with the throughput since its last
// invocation.
type RateFunc func(expected, received int64, octetsPerSecond float64)

// OctetsPerSecond returns a [ProgressFunc] that calls fn at most once per
// elapsed second with the throughput since the previous call. If now is nil,
// [time.Now] is used.
func OctetsPerSecond(fn RateFunc, now func() time.Time) ProgressFunc {
	if now == nil {
		now = time.Now
	}

	start := now()
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)
	limiter.AllowN(start, 1)

	var (
		count    int64
		previous int64 = -1
	)

	return func(expected, received int64) {
		if previous >= 0 {
			count += received - previous
		}

		previous = received
		current := now()

		if !limiter.AllowN(current, 1) {
			return
		}

		elapsed := current.Sub(start).Seconds()
		fn(expected, received, float64(count)/elapsed)

		count = 0
		start = current
	}
}
