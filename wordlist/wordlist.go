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

// Package wordlist defines the normalized word list produced by all
// dictionary decoders.
package wordlist

import (
	"strconv"
)

// Entry is a single word list entry.
type Entry struct {
	// Word is the dictionary word. It may be empty if the file contains
	// zero-length word records.
	Word string

	// Pinyin is the word's pinyin with syllables joined by the decoder's
	// separator. An empty string means the pinyin is absent.
	Pinyin string

	// Weight is the word's frequency weight. A nil Weight means the weight is
	// absent, which is distinct from a weight of zero.
	Weight *uint32
}

// Weight returns a pointer to w suitable for use as an [Entry] weight.
func Weight(w uint32) *uint32 {
	return &w
}

// WeightString returns the weight as a decimal string or the empty string if
// the weight is absent.
func (e *Entry) WeightString() string {
	if e.Weight == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*e.Weight), 10)
}

// String returns the entry's word.
func (e *Entry) String() string {
	return e.Word
}
