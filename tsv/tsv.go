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

// Package tsv implements exporting word lists as tab separated values.
//
// Each entry is written on its own line with three columns: the word, the
// pinyin and the weight. Absent values are written as empty columns. No
// header row is written.
package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-scel/wordlist"
)

// Write writes entries to w in the given order.
func Write(w io.Writer, entries []*wordlist.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", e.Word, e.Pinyin, e.WeightString()); err != nil {
			return fmt.Errorf("writing entry %q: %w", e.Word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}
	return nil
}

// WriteFile writes entries to the file at path. The file is compressed with
// dictzip if path has a .dz extension.
func WriteFile(path string, entries []*wordlist.Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if strings.ToLower(filepath.Ext(path)) != ".dz" {
		return Write(f, entries)
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating dictzip writer: %w", err)
	}
	if err := Write(z, entries); err != nil {
		_ = z.Close()
		return err
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("closing dictzip writer: %w", err)
	}
	return nil
}
