// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"
	"strings"
)

// Format is an archive format supported by [Extractor].
type Format int

// Supported archive formats.
const (
	// FormatTarXZ is a tar archive compressed with xz, like the base.txz of
	// FreeBSD releases.
	FormatTarXZ Format = iota + 1
	// FormatCPIO is an uncompressed cpio archive in newc or odc format.
	FormatCPIO
)

type formatSpec struct {
	name   string
	suffix string
	open   func(io.Reader) (entryReader, error)
}

var formats = map[Format]formatSpec{
	FormatTarXZ: {
		name:   "txz",
		suffix: ".txz",
		open:   newTarXZReader,
	},
	FormatCPIO: {
		name:   "cpio",
		suffix: ".cpio",
		open:   newCPIOReader,
	},
}

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatTarXZ, FormatCPIO}
}

func (f Format) String() string {
	spec, exists := formats[f]
	if !exists {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return spec.name
}

// ParseFormat returns the format with the given name, e.g. "txz".
func ParseFormat(name string) (Format, error) {
	for format, spec := range formats {
		if spec.name == name {
			return format, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// InferFormat infers the archive format from the file name suffix. It
// returns false if the suffix is not known.
func InferFormat(path string) (Format, bool) {
	for format, spec := range formats {
		if strings.HasSuffix(path, spec.suffix) {
			return format, true
		}
	}

	return 0, false
}

// Set implements [pflag.Value].
func (f *Format) Set(name string) error {
	format, err := ParseFormat(name)
	if err != nil {
		return err
	}

	*f = format

	return nil
}

// Type implements [pflag.Value].
func (*Format) Type() string {
	return "format"
}
