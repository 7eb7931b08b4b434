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
	"github.com/ianlewis/go-scel/pinyin"
	"github.com/ianlewis/go-scel/wordlist"
)

// Decode reads all words in the word table in b starting at offset. It
// returns the words in file order and whether the word table was read to its
// end. A false result means the table was truncated and the returned words
// are the ones read before the truncation point.
func Decode(b []byte, offset int, table *pinyin.Table, options *Options) ([]*wordlist.Entry, bool) {
	entries := []*wordlist.Entry{}
	s := NewScanner(b, offset, table, options)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Complete()
}
