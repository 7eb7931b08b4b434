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

package pinyin

import (
	"strings"

	"github.com/ianlewis/go-scel/internal/le"
)

// TableOffset is the offset of the pinyin table in .scel and .qcel files.
const TableOffset = 0x1540

// Table maps pinyin indices to pinyin syllables. Indices are not necessarily
// contiguous and need not start at zero.
type Table struct {
	syllables map[uint16]string
}

// NewTable returns a table containing the given syllables.
func NewTable(syllables map[uint16]string) *Table {
	t := &Table{
		syllables: make(map[uint16]string, len(syllables)),
	}
	for i, s := range syllables {
		t.syllables[i] = s
	}
	return t
}

// Decode reads the pinyin table starting at offset in b. It returns the table
// and the offset immediately after the last fully read table record.
//
// Decode never fails. If b is truncated the records read so far are returned
// and the partial record is dropped.
func Decode(b []byte, offset int) (*Table, int) {
	t := &Table{
		syllables: map[uint16]string{},
	}

	if !le.Fits(b, offset, 4) {
		return t, offset
	}
	count := le.Uint32(b, offset)
	offset += 4

	for range count {
		// index (2 bytes) + text length (2 bytes)
		if !le.Fits(b, offset, 4) {
			break
		}
		index := le.Uint16(b, offset)
		n := int(le.Uint16(b, offset+2))
		if !le.Fits(b, offset+4, n) {
			break
		}
		t.syllables[index] = le.UTF16String(b, offset+4, n)
		offset += 4 + n
	}

	return t, offset
}

// Lookup returns the syllable for index i.
func (t *Table) Lookup(i uint16) (string, bool) {
	s, ok := t.syllables[i]
	return s, ok
}

// Len returns the number of syllables in the table.
func (t *Table) Len() int {
	return len(t.syllables)
}

// Join resolves each index and joins the syllables with sep. Indices missing
// from the table resolve to an empty syllable, so their separators are kept.
func (t *Table) Join(indices []uint16, sep string) string {
	syllables := make([]string, len(indices))
	for n, i := range indices {
		syllables[n] = t.syllables[i]
	}
	return strings.Join(syllables, sep)
}
