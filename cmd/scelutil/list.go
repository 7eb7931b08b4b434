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
	"errors"
	"fmt"
	"io/fs"

	"github.com/rodaine/table"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "List dictionaries",
	ArgsUsage:    "[DIR...]",
	Description:  "List all dictionaries in the given directories or the data directories.",
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		dirs := c.Args().Slice()
		explicit := len(dirs) > 0
		if !explicit {
			dirs = c.StringSlice("data-dir")
		}

		var dicts []*scel.Dictionary
		failed := 0
		for _, dir := range dirs {
			openDicts, errs := scel.OpenAll(dir, options(c))
			for _, err := range errs {
				// Default data directories need not exist.
				if !explicit && errors.Is(err, fs.ErrNotExist) {
					log.WithField("dir", dir).Debug("skipping missing data directory")
					continue
				}
				log.WithFields(logrus.Fields{"dir": dir}).Error(err)
				failed++
			}
			dicts = append(dicts, openDicts...)
		}

		tbl := table.New("File", "Name", "Category", "Words").WithWriter(c.App.Writer)
		for _, d := range dicts {
			category := ""
			if h := d.Header(); h != nil {
				category = h.Category
			}
			words := fmt.Sprint(len(d.Entries()))
			if !d.Complete() {
				words += " (truncated)"
			}
			tbl.AddRow(d.Path(), d.Name(), category, words)
		}
		tbl.Print()

		if failed > 0 {
			return fmt.Errorf("%w: %d dictionaries could not be opened", ErrScelutil, failed)
		}
		return nil
	},
}
