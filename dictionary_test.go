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

package scel_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-scel"
	"github.com/ianlewis/go-scel/header"
	"github.com/ianlewis/go-scel/internal/testutil"
	"github.com/ianlewis/go-scel/wordlist"
)

func testScel(t *testing.T) []byte {
	t.Helper()

	return testutil.MakeScel(t, &testutil.Scel{
		Header: testutil.Header{
			CodeCount:   2,
			WordCount:   3,
			Name:        "测试词库",
			Category:    "测试",
			Description: "用于测试",
			Samples:     "你好",
		},
		Syllables: []testutil.Syllable{
			{Index: 0, Text: "a"},
			{Index: 1, Text: "ni"},
			{Index: 2, Text: "hao"},
		},
		Groups: []testutil.Group{
			{
				Pinyin: []uint16{0},
				Words: []testutil.Word{
					{Word: "啊", Ext: testutil.Ext(10, 10)},
					{Word: "阿", Ext: testutil.Ext(5, 10)},
				},
			},
			{
				Pinyin: []uint16{1, 2},
				Words: []testutil.Word{
					{Word: "你好", Ext: testutil.Ext(20, 10)},
				},
			},
		},
		Terminate: true,
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTemp(t, "test.scel", testScel(t))

	d, err := scel.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if want, got := path, d.Path(); want != got {
		t.Errorf("Path; want: %q, got: %q", want, got)
	}
	if want, got := "测试词库", d.Name(); want != got {
		t.Errorf("Name; want: %q, got: %q", want, got)
	}
	if !d.Complete() {
		t.Errorf("Complete; want: true, got: false")
	}

	expectedHeader := &header.Header{
		CodeCount:   2,
		WordCount:   3,
		Name:        "测试词库",
		Category:    "测试",
		Description: "用于测试",
		Samples:     "你好",
	}
	if diff := cmp.Diff(expectedHeader, d.Header()); diff != "" {
		t.Errorf("Header (-want, +got):\n%s", diff)
	}

	expectedEntries := []*wordlist.Entry{
		{Word: "啊", Pinyin: "a", Weight: wordlist.Weight(10)},
		{Word: "阿", Pinyin: "a", Weight: wordlist.Weight(5)},
		{Word: "你好", Pinyin: "ni hao", Weight: wordlist.Weight(20)},
	}
	if diff := cmp.Diff(expectedEntries, d.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}
}

func TestOpen_truncated(t *testing.T) {
	t.Parallel()

	b := testScel(t)
	// Cut the terminator, the last extension block and part of the last word.
	path := testutil.WriteTemp(t, "test.qcel", b[:len(b)-15])

	d, err := scel.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.Complete() {
		t.Errorf("Complete; want: false, got: true")
	}
	if want, got := 2, len(d.Entries()); want != got {
		t.Errorf("unexpected # of entries; want: %d, got: %d", want, got)
	}
}

func TestOpen_text(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTemp(t, "words.txt", []byte("你好 ni'hao 1\n"))

	d, err := scel.Open(path, &scel.Options{Separator: "-"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want, got := "words", d.Name(); want != got {
		t.Errorf("Name; want: %q, got: %q", want, got)
	}
	if d.Header() != nil {
		t.Errorf("Header; want: nil, got: %#v", d.Header())
	}

	expected := []*wordlist.Entry{
		{Word: "你好", Pinyin: "ni-hao", Weight: wordlist.Weight(1)},
	}
	if diff := cmp.Diff(expected, d.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}
}

func TestOpen_errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported", func(t *testing.T) {
		t.Parallel()

		// The file does not need to exist.
		_, err := scel.Open(filepath.Join(t.TempDir(), "x.docx"), nil)
		if !errors.Is(err, scel.ErrUnsupportedFormat) {
			t.Fatalf("Open: want: %v, got: %v", scel.ErrUnsupportedFormat, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := scel.Open(filepath.Join(t.TempDir(), "x.scel"), nil)
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Open: want: %v, got: %v", os.ErrNotExist, err)
		}
	})
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{
		"a.scel":       testScel(t),
		"sub/b.qcel":   testScel(t),
		"c.txt":        []byte("你好\n"),
		"ignored.docx": []byte("ignored"),
	}
	for name, b := range files {
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	dicts, errs := scel.OpenAll(dir, nil)
	if len(errs) > 0 {
		t.Fatalf("OpenAll: %v", errs)
	}

	var paths []string
	for _, d := range dicts {
		rel, err := filepath.Rel(dir, d.Path())
		if err != nil {
			t.Fatal(err)
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	if diff := cmp.Diff([]string{"a.scel", "c.txt", "sub/b.qcel"}, paths); diff != "" {
		t.Fatalf("OpenAll (-want, +got):\n%s", diff)
	}
}

func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	path := testutil.WriteTemp(t, "test.scel", testScel(t))
	d, err := scel.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		expected []*wordlist.Entry
	}{
		{
			name:  "match",
			query: "你好",
			expected: []*wordlist.Entry{
				{Word: "你好", Pinyin: "ni hao", Weight: wordlist.Weight(20)},
			},
		},
		{
			name:     "no match",
			query:    "世界",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, d.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
