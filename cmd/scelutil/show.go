// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-scel/wordlist"
)

const (
	sortIndex  = "index"
	sortWord   = "word"
	sortPinyin = "pinyin"
	sortWeight = "weight"
)

// sortEntries returns a sorted copy of entries. Sorting by index keeps file
// order. Absent weights sort before all weights.
func sortEntries(entries []*wordlist.Entry, by string, desc bool) ([]*wordlist.Entry, error) {
	var compare func(a, b *wordlist.Entry) int
	switch by {
	case sortIndex:
		compare = func(*wordlist.Entry, *wordlist.Entry) int { return 0 }
	case sortWord, sortPinyin:
		col := collate.New(language.Chinese)
		compare = func(a, b *wordlist.Entry) int {
			if by == sortWord {
				return col.CompareString(a.Word, b.Word)
			}
			return col.CompareString(a.Pinyin, b.Pinyin)
		}
	case sortWeight:
		compare = func(a, b *wordlist.Entry) int {
			return cmp.Compare(weightKey(a), weightKey(b))
		}
	default:
		return nil, fmt.Errorf("%w: unknown sort column %q", ErrFlagParse, by)
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *wordlist.Entry) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	if by == sortIndex && desc {
		slices.Reverse(sorted)
	}
	return sorted, nil
}

func weightKey(e *wordlist.Entry) int64 {
	if e.Weight == nil {
		return -1
	}
	return int64(*e.Weight)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var showCommand = &cli.Command{
	Name:         "show",
	Usage:        "Show dictionary words",
	ArgsUsage:    "FILE",
	Description:  "Print the words of a dictionary as a table.",
	OnUsageError: onUsageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "sort",
			Usage: "sort by `COLUMN` (index, word, pinyin, weight)",
			Value: sortIndex,
		},
		&cli.BoolFlag{
			Name:               "desc",
			Usage:              "sort in descending order",
			DisableDefaultText: true,
		},
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "show at most `N` words, 0 shows all",
			Aliases: []string{"n"},
			Value:   100,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single FILE argument", ErrFlagParse)
		}
		limit := c.Int("limit")
		if limit < 0 {
			return fmt.Errorf("%w: invalid limit %d", ErrFlagParse, limit)
		}

		d, err := openDict(c, c.Args().First())
		if err != nil {
			return err
		}

		// The limit is applied in file order before sorting.
		entries := d.Entries()
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		pos := make(map[*wordlist.Entry]int, len(entries))
		for i, e := range entries {
			pos[e] = i + 1
		}
		entries, err = sortEntries(entries, c.String("sort"), c.Bool("desc"))
		if err != nil {
			return err
		}

		tbl := table.New("#", "Word", "Pinyin", "Weight").WithWriter(c.App.Writer)
		for _, e := range entries {
			tbl.AddRow(pos[e], e.Word, orDash(e.Pinyin), orDash(e.WeightString()))
		}
		tbl.Print()

		_, err = fmt.Fprintf(c.App.Writer, "%d/%d words\n", len(entries), len(d.Entries()))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScelutil, err)
		}
		return nil
	},
}
