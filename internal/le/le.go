// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package le implements little-endian primitive reads over a byte buffer.
// Bounds are the caller's responsibility. Use Fits before reading.
package le

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// utf16le decodes UTF-16 little-endian text. Invalid sequences decode to
// U+FFFD rather than failing.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Fits reports whether n bytes starting at off are within b.
func Fits(b []byte, off, n int) bool {
	return off >= 0 && n >= 0 && off <= len(b) && n <= len(b)-off
}

// Uint16 reads a little-endian uint16 at off.
func Uint16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

// Uint32 reads a little-endian uint32 at off.
func Uint32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

// UTF16String decodes n bytes of UTF-16LE text starting at off. Decoding
// stops at the first zero code unit. A trailing odd byte is ignored.
func UTF16String(b []byte, off, n int) string {
	units := b[off : off+n-n%2]
	for i := 0; i+1 < len(units); i += 2 {
		if units[i] == 0 && units[i+1] == 0 {
			units = units[:i]
			break
		}
	}
	if len(units) == 0 {
		return ""
	}

	s, err := utf16le.NewDecoder().Bytes(units)
	if err != nil {
		// The decoder replaces malformed input so this should not happen.
		return ""
	}
	return string(s)
}
