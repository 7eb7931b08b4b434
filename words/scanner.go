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

package words

import (
	"github.com/ianlewis/go-scel/internal/le"
	"github.com/ianlewis/go-scel/pinyin"
	"github.com/ianlewis/go-scel/wordlist"
)

// weightExtLen is the minimum extension block length that carries a weight.
const weightExtLen = 4

// Options are options for scanning the word table.
type Options struct {
	// Separator is used to join the syllables of multi-syllable pinyin.
	Separator string
}

// DefaultOptions is the default options for a Scanner.
var DefaultOptions = &Options{
	Separator: " ",
}

// Scanner scans the word table from start to end.
type Scanner struct {
	b      []byte
	offset int
	table  *pinyin.Table
	sep    string

	// pinyin is the current homophone group's pinyin.
	pinyin string

	// remaining is the number of words left in the current homophone group.
	remaining int

	entry    *wordlist.Entry
	done     bool
	complete bool
}

// NewScanner returns a new Scanner that reads the word table in b starting
// at offset. Syllable indices are resolved through table.
func NewScanner(b []byte, offset int, table *pinyin.Table, options *Options) *Scanner {
	if options == nil {
		options = DefaultOptions
	}
	if table == nil {
		table = pinyin.NewTable(nil)
	}
	return &Scanner{
		b:      b,
		offset: offset,
		table:  table,
		sep:    options.Separator,
	}
}

// Scan advances the scanner to the next word. It returns false when the end
// of the word table is reached or the next word record is truncated.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	s.entry = nil

	for s.remaining == 0 {
		if s.offset >= len(s.b) {
			// Running past the end means the last extension block was cut
			// short.
			s.stop(s.offset == len(s.b))
			return false
		}
		if !s.readGroup() {
			return false
		}
	}

	return s.readWord()
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *wordlist.Entry {
	return s.entry
}

// Complete reports whether scanning ended at the end of the word table
// rather than at a truncated record. It is only meaningful after Scan
// returns false.
func (s *Scanner) Complete() bool {
	return s.complete
}

// Offset returns the offset of the next unread byte.
func (s *Scanner) Offset() int {
	return s.offset
}

// readGroup reads a homophone group header and its pinyin index list.
func (s *Scanner) readGroup() bool {
	if !le.Fits(s.b, s.offset, 2) {
		s.stop(false)
		return false
	}
	same := int(le.Uint16(s.b, s.offset))
	s.offset += 2
	if same == 0 {
		// A zero homophone count marks the end of the word table.
		s.stop(true)
		return false
	}

	if !le.Fits(s.b, s.offset, 2) {
		s.stop(false)
		return false
	}
	// An odd byte length still covers its last partial index.
	n := (int(le.Uint16(s.b, s.offset)) + 1) / 2
	s.offset += 2

	indices := make([]uint16, 0, n)
	for range n {
		if !le.Fits(s.b, s.offset, 2) {
			s.stop(false)
			return false
		}
		indices = append(indices, le.Uint16(s.b, s.offset))
		s.offset += 2
	}

	s.pinyin = s.table.Join(indices, s.sep)
	s.remaining = same
	return true
}

// readWord reads a single word record from the current homophone group.
func (s *Scanner) readWord() bool {
	if !le.Fits(s.b, s.offset, 2) {
		s.stop(false)
		return false
	}
	wordLen := int(le.Uint16(s.b, s.offset))
	s.offset += 2

	if !le.Fits(s.b, s.offset, wordLen) {
		s.stop(false)
		return false
	}
	word := le.UTF16String(s.b, s.offset, wordLen)
	s.offset += wordLen

	if !le.Fits(s.b, s.offset, 2) {
		s.stop(false)
		return false
	}
	extLen := int(le.Uint16(s.b, s.offset))
	s.offset += 2

	var weight *uint32
	if extLen >= weightExtLen && le.Fits(s.b, s.offset, 2) {
		weight = wordlist.Weight(uint32(le.Uint16(s.b, s.offset)))
	}
	// The rest of the extension block is skipped, even if it runs past the
	// end of the buffer.
	s.offset += extLen
	s.remaining--

	s.entry = &wordlist.Entry{
		Word:   word,
		Pinyin: s.pinyin,
		Weight: weight,
	}
	return true
}

func (s *Scanner) stop(complete bool) {
	s.done = true
	s.complete = complete
	s.remaining = 0
}
