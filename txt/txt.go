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

// Package txt implements reading plain text word lists.
//
// Each non-blank line holds up to three whitespace separated fields: the
// word, its pinyin and its weight. Pinyin syllables are joined with
// apostrophes, e.g. "ni'hao".
package txt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-scel/internal/folding"
	"github.com/ianlewis/go-scel/wordlist"
)

// Options are options for reading text word lists.
type Options struct {
	// Separator is used to join the syllables of multi-syllable pinyin.
	Separator string
}

// DefaultOptions is the default options for Decode.
var DefaultOptions = &Options{
	Separator: " ",
}

// Decode reads a text word list from r. If reading fails the entries read
// before the failure are returned along with the error.
func Decode(r io.Reader, options *Options) ([]*wordlist.Entry, error) {
	if options == nil {
		options = DefaultOptions
	}

	folder := folding.NewSeparatorFolder(options.Separator)
	entries := []*wordlist.Entry{}

	s := bufio.NewScanner(r)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}

		e := &wordlist.Entry{
			Word: fields[0],
		}
		if len(fields) > 1 {
			folder.Reset()
			py, _, err := transform.String(folder, fields[1])
			if err != nil {
				return nil, fmt.Errorf("folding pinyin %q: %w", fields[1], err)
			}
			e.Pinyin = py
		}
		if len(fields) > 2 {
			if w, err := strconv.ParseUint(fields[2], 10, 32); err == nil {
				//nolint:gosec // parsed as 32 bits.
				e.Weight = wordlist.Weight(uint32(w))
			}
		}
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return entries, fmt.Errorf("reading word list: %w", err)
	}

	return entries, nil
}
