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

package scel

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-scel/header"
	"github.com/ianlewis/go-scel/pinyin"
	"github.com/ianlewis/go-scel/txt"
	"github.com/ianlewis/go-scel/wordlist"
	"github.com/ianlewis/go-scel/words"
)

// ErrUnsupportedFormat indicates that a file's extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported format")

var (
	// BinaryExtensions are the extensions of binary cell dictionaries.
	BinaryExtensions = []string{".scel", ".qcel"}

	// TextExtensions are the extensions of plain text word lists.
	TextExtensions = []string{".txt"}
)

// Options are options for decoding dictionaries.
type Options struct {
	// Separator is used to join the syllables of multi-syllable pinyin.
	Separator string
}

// DefaultOptions is the default options for decoding dictionaries.
var DefaultOptions = &Options{
	Separator: " ",
}

// Extensions returns all supported file extensions.
func Extensions() []string {
	return slices.Concat(BinaryExtensions, TextExtensions)
}

// Supported reports whether the file name has a supported extension.
func Supported(name string) bool {
	return slices.Contains(Extensions(), ext(name))
}

// Decode decodes the dictionary data b. The format is determined by the
// extension of name. An error is returned only if the extension is not
// supported. Malformed data results in a partial or empty list.
func Decode(name string, b []byte, options *Options) ([]*wordlist.Entry, error) {
	r, err := decode(name, b, options)
	if err != nil {
		return nil, err
	}
	return r.entries, nil
}

type result struct {
	header   *header.Header
	entries  []*wordlist.Entry
	complete bool
}

func decode(name string, b []byte, options *Options) (*result, error) {
	if options == nil {
		options = DefaultOptions
	}

	e := ext(name)
	switch {
	case slices.Contains(BinaryExtensions, e):
		return decodeBinary(b, options), nil
	case slices.Contains(TextExtensions, e):
		return decodeText(b, options), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, e)
	}
}

func decodeBinary(b []byte, options *Options) *result {
	r := &result{}

	// The header is informational. Files with a short header may still
	// have readable tables.
	if h, err := header.New(b); err == nil {
		r.header = h
	}

	table, offset := pinyin.Decode(b, pinyin.TableOffset)
	r.entries, r.complete = words.Decode(b, offset, table, &words.Options{
		Separator: options.Separator,
	})
	return r
}

func decodeText(b []byte, options *Options) *result {
	entries, err := txt.Decode(bytes.NewReader(b), &txt.Options{
		Separator: options.Separator,
	})
	return &result{
		entries:  entries,
		complete: err == nil,
	}
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
