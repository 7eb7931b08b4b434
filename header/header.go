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

// Package header implements reading the metadata header of .scel files.
//
// The header occupies the start of the file up to the pinyin table:
//
//	0x000 - 0x11F  unknown
//	0x120 - 0x123  number of distinct pinyin codes
//	0x124 - 0x127  number of words
//	0x128 - 0x12F  unknown
//	0x130 - 0x337  dictionary name
//	0x338 - 0x53F  dictionary category
//	0x540 - 0xD3F  description
//	0xD40 - 0x153F sample words
//
// Counts are 32-bit little-endian integers and text fields are NUL padded
// UTF-16LE.
package header

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-scel/internal/le"
)

const (
	codeCountOffset   = 0x120
	wordCountOffset   = 0x124
	nameOffset        = 0x130
	categoryOffset    = 0x338
	descriptionOffset = 0x540
	samplesOffset     = 0xd40

	// Size is the size of the header.
	Size = 0x1540
)

// ErrShortHeader indicates that the data is too short to contain a header.
var ErrShortHeader = errors.New("short header")

// Header is .scel file metadata. The counts are as recorded by the file's
// author and are not guaranteed to match the word table.
type Header struct {
	// CodeCount is the number of distinct pinyin codes.
	CodeCount uint32

	// WordCount is the number of words.
	WordCount uint32

	Name        string
	Category    string
	Description string
	Samples     string
}

// New reads the header from the start of b.
func New(b []byte) (*Header, error) {
	if len(b) < Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}

	return &Header{
		CodeCount:   le.Uint32(b, codeCountOffset),
		WordCount:   le.Uint32(b, wordCountOffset),
		Name:        text(b, nameOffset, categoryOffset),
		Category:    text(b, categoryOffset, descriptionOffset),
		Description: text(b, descriptionOffset, samplesOffset),
		Samples:     text(b, samplesOffset, Size),
	}, nil
}

func text(b []byte, start, end int) string {
	return strings.TrimSpace(le.UTF16String(b, start, end-start))
}
