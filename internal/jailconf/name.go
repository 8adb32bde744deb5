// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jailconf

import (
	"fmt"
	"regexp"
	"strings"
)

// NamePattern is the pattern valid jail names must match. Letters and
// digits of any script are allowed.
const NamePattern = `^[\p{L}\p{Nd}_-]+$`

var nameRegexp = regexp.MustCompile(NamePattern)

// Name is a validated jail name.
type Name string

// ParseName validates the given jail name. Surrounding whitespace is
// removed.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)

	if !nameRegexp.MatchString(s) {
		return "", fmt.Errorf("%w: '%s' must match %s",
			ErrInvalidName, s, NamePattern)
	}

	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}
