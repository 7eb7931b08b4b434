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

package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

const (
	codeCountOffset   = 0x120
	wordCountOffset   = 0x124
	nameOffset        = 0x130
	categoryOffset    = 0x338
	descriptionOffset = 0x540
	samplesOffset     = 0xd40
	pinyinTableOffset = 0x1540
)

// Syllable is a pinyin table record.
type Syllable struct {
	Index uint16
	Text  string
}

// Word is a word record in a homophone group.
type Word struct {
	Word string

	// Ext is the raw extension block following the word.
	Ext []byte
}

// Group is a homophone group in the word table.
type Group struct {
	// Pinyin is the list of pinyin table indices.
	Pinyin []uint16
	Words  []Word
}

// Header is the .scel header metadata.
type Header struct {
	CodeCount   uint32
	WordCount   uint32
	Name        string
	Category    string
	Description string
	Samples     string
}

// Scel is a test .scel file.
type Scel struct {
	Header    Header
	Syllables []Syllable
	Groups    []Group

	// Terminate appends a zero homophone count after the groups.
	Terminate bool
}

// UTF16 encodes s as UTF-16LE.
func UTF16(t *testing.T, s string) []byte {
	t.Helper()

	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatalf("encoding %q: %v", s, err)
	}
	return b
}

// Ext returns an extension block of n bytes with w at its start.
func Ext(w uint16, n int) []byte {
	b := make([]byte, n)
	if n >= 2 {
		binary.LittleEndian.PutUint16(b, w)
	}
	return b
}

// MakePinyinTable creates a test pinyin table.
func MakePinyinTable(t *testing.T, syllables []Syllable) []byte {
	t.Helper()

	b := binary.LittleEndian.AppendUint32(nil, uint32(len(syllables)))
	for _, s := range syllables {
		text := UTF16(t, s.Text)
		b = binary.LittleEndian.AppendUint16(b, s.Index)
		b = appendUint16(t, b, len(text))
		b = append(b, text...)
	}
	return b
}

// MakeWordTable creates a test word table.
func MakeWordTable(t *testing.T, groups []Group, terminate bool) []byte {
	t.Helper()

	var b []byte
	for _, g := range groups {
		b = appendUint16(t, b, len(g.Words))
		b = appendUint16(t, b, 2*len(g.Pinyin))
		for _, i := range g.Pinyin {
			b = binary.LittleEndian.AppendUint16(b, i)
		}
		for _, w := range g.Words {
			word := UTF16(t, w.Word)
			b = appendUint16(t, b, len(word))
			b = append(b, word...)
			b = appendUint16(t, b, len(w.Ext))
			b = append(b, w.Ext...)
		}
	}
	if terminate {
		b = append(b, 0, 0)
	}
	return b
}

// MakeHeader creates the fixed size header region preceding the pinyin
// table.
func MakeHeader(t *testing.T, h Header) []byte {
	t.Helper()

	b := make([]byte, pinyinTableOffset)
	binary.LittleEndian.PutUint32(b[codeCountOffset:], h.CodeCount)
	binary.LittleEndian.PutUint32(b[wordCountOffset:], h.WordCount)
	copy(b[nameOffset:categoryOffset], UTF16(t, h.Name))
	copy(b[categoryOffset:descriptionOffset], UTF16(t, h.Category))
	copy(b[descriptionOffset:samplesOffset], UTF16(t, h.Description))
	copy(b[samplesOffset:pinyinTableOffset], UTF16(t, h.Samples))
	return b
}

// MakeScel creates a test .scel file.
func MakeScel(t *testing.T, s *Scel) []byte {
	t.Helper()

	b := MakeHeader(t, s.Header)
	b = append(b, MakePinyinTable(t, s.Syllables)...)
	b = append(b, MakeWordTable(t, s.Groups, s.Terminate)...)
	return b
}

// WriteTemp writes b to a file with the given name in a temporary directory
// and returns its path.
func WriteTemp(t *testing.T, name string, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func appendUint16(t *testing.T, b []byte, n int) []byte {
	t.Helper()

	if n > math.MaxUint16 {
		t.Fatalf("value too large: %d", n)
	}
	//nolint:gosec // bounds checked above.
	return binary.LittleEndian.AppendUint16(b, uint16(n))
}
