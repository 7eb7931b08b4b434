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

// Package folding implements text transformers used to normalize word list
// fields.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// SeparatorFolder rewrites pinyin syllable separators. Spans of whitespace
// and apostrophes between syllables are replaced with Separator. Leading and
// trailing separators are removed.
type SeparatorFolder struct {
	// Separator is emitted between syllables.
	Separator string

	// notStart is true after encountering the first syllable rune.
	notStart bool

	// sepSpan is true if the transformer is currently handling a separator
	// span.
	sepSpan bool
}

// NewSeparatorFolder returns a SeparatorFolder that joins syllables with sep.
func NewSeparatorFolder(sep string) *SeparatorFolder {
	return &SeparatorFolder{Separator: sep}
}

func isSeparator(r rune) bool {
	return r == '\'' || r == '’' || unicode.IsSpace(r)
}

// Transform implements [transform.Transformer.Transform].
func (f *SeparatorFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if isSeparator(c) {
			nSrc += size
			if f.notStart {
				f.sepSpan = true
			}
			continue
		}

		if f.sepSpan {
			// Trailing separators are never emitted.
			if nDst+len(f.Separator) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], f.Separator)
			f.sepSpan = false
		}

		// NOTE: c could be utf8.RuneError in which case size would be 1 but
		// the encoded length is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		f.notStart = true
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SeparatorFolder) Reset() {
	f.notStart = false
	f.sepSpan = false
}
