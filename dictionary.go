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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-scel/header"
	"github.com/ianlewis/go-scel/internal/index"
	"github.com/ianlewis/go-scel/wordlist"
)

// Dictionary is a decoded dictionary file.
type Dictionary struct {
	path     string
	header   *header.Header
	entries  []*wordlist.Entry
	complete bool

	indexOnce sync.Once
	index     *index.Index[*wordlist.Entry]
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
// Files with unsupported extensions are skipped.
func OpenAll(path string, options *Options) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && Supported(info.Name()) {
			d, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens and decodes the dictionary file at path. The file's extension is
// checked before the file is read.
func Open(path string, options *Options) (*Dictionary, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	r, err := decode(path, b, options)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return &Dictionary{
		path:     path,
		header:   r.header,
		entries:  r.entries,
		complete: r.complete,
	}, nil
}

// Path returns the path of the dictionary file.
func (d *Dictionary) Path() string {
	return d.path
}

// Name returns the dictionary name from the header or the file's base name
// without its extension if the dictionary has no name.
func (d *Dictionary) Name() string {
	if d.header != nil && d.header.Name != "" {
		return d.header.Name
	}
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Header returns the dictionary's header metadata. It returns nil for
// formats without a header or files too short to contain one.
func (d *Dictionary) Header() *header.Header {
	return d.header
}

// Entries returns the dictionary's words in file order.
func (d *Dictionary) Entries() []*wordlist.Entry {
	return d.entries
}

// Complete reports whether the whole dictionary was decoded. It is false when
// decoding stopped at truncated or malformed data.
func (d *Dictionary) Complete() bool {
	return d.complete
}

// Search returns the entries whose word matches query. Matching entries are
// returned in file order.
func (d *Dictionary) Search(query string) []*wordlist.Entry {
	d.indexOnce.Do(func() {
		d.index = index.NewIndex(d.entries, func(e *wordlist.Entry) string {
			return e.Word
		}, strings.Compare)
	})
	return d.index.Search(query)
}
