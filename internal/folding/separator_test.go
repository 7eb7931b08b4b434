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

package folding

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestSeparatorFolder_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sep      string
		src      string
		expected string
	}{
		{
			name:     "apostrophe to space",
			sep:      " ",
			src:      "ni'hao",
			expected: "ni hao",
		},
		{
			name:     "space to apostrophe",
			sep:      "'",
			src:      "ni hao",
			expected: "ni'hao",
		},
		{
			name:     "mixed spans",
			sep:      " ",
			src:      "zhong' \tguo''ren",
			expected: "zhong guo ren",
		},
		{
			name:     "leading and trailing",
			sep:      " ",
			src:      "'　ni'hao' ",
			expected: "ni hao",
		},
		{
			name:     "multi byte separator",
			sep:      "・",
			src:      "ni'hao",
			expected: "ni・hao",
		},
		{
			name:     "empty separator",
			sep:      "",
			src:      "ni'hao",
			expected: "nihao",
		},
		{
			name:     "single syllable",
			sep:      " ",
			src:      "a",
			expected: "a",
		},
		{
			name:     "only separators",
			sep:      " ",
			src:      "' '",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(NewSeparatorFolder(test.sep), test.src)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("transform.String (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSeparatorFolder_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sep   string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "fits",
			sep:   " ",
			src:   []byte("ni'hao"),
			dst:   make([]byte, 7),
			atEOF: true,

			expected: []byte{'n', 'i', ' ', 'h', 'a', 'o', 0},
			nDst:     6,
			nSrc:     6,
		},
		{
			name:  "short dst",
			sep:   " ",
			src:   []byte("ni'hao"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'n', 'i', ' ', 'h'},
			nDst:     4,
			nSrc:     4,
			err:      transform.ErrShortDst,
		},
		{
			name:  "short dst separator",
			sep:   "--",
			src:   []byte("ni'hao"),
			dst:   make([]byte, 3),
			atEOF: true,

			expected: []byte{'n', 'i', 0},
			nDst:     2,
			nSrc:     3,
			err:      transform.ErrShortDst,
		},
		{
			name:  "short src",
			sep:   " ",
			src:   []byte("a'\xe4\xbd"),
			dst:   make([]byte, 8),
			atEOF: false,

			expected: []byte{'a', 0, 0, 0, 0, 0, 0, 0},
			nDst:     1,
			nSrc:     2,
			err:      transform.ErrShortSrc,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := NewSeparatorFolder(test.sep)
			nDst, nSrc, err := f.Transform(test.dst, test.src, test.atEOF)
			if !errors.Is(err, test.err) {
				t.Errorf("unexpected error; want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Errorf("dst (-want, +got):\n%s", diff)
			}
			if want, got := test.nDst, nDst; want != got {
				t.Errorf("nDst; want: %d, got: %d", want, got)
			}
			if want, got := test.nSrc, nSrc; want != got {
				t.Errorf("nSrc; want: %d, got: %d", want, got)
			}
		})
	}
}
