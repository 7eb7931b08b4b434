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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel/tsv"
	"github.com/ianlewis/go-scel/wordlist"
)

var queryCommand = &cli.Command{
	Name:         "query",
	Usage:        "Query dictionaries",
	ArgsUsage:    "QUERY FILE...",
	Description:  "Print the entries matching a word in each dictionary.",
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.NArg() < 2 {
			return fmt.Errorf("%w: expected QUERY and FILE arguments", ErrFlagParse)
		}
		query := c.Args().First()

		var entries []*wordlist.Entry
		for _, path := range c.Args().Tail() {
			d, err := openDict(c, path)
			if err != nil {
				return err
			}
			entries = append(entries, d.Search(query)...)
		}

		if len(entries) == 0 {
			return fmt.Errorf("%w: no entries found for %q", ErrScelutil, query)
		}
		return tsv.Write(c.App.Writer, entries)
	},
}
