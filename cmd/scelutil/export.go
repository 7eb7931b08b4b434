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
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-scel/tsv"
)

// defaultOutput returns the input path with its extension replaced by .tsv.
func defaultOutput(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tsv"
}

var exportCommand = &cli.Command{
	Name:         "export",
	Usage:        "Export dictionary words as TSV",
	ArgsUsage:    "FILE",
	Description:  "Write one word per line with word, pinyin and weight columns.",
	OnUsageError: onUsageError,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write to `PATH`, '-' for stdout, '.dz' paths are compressed (default: FILE with a .tsv extension)",
			Aliases: []string{"o"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single FILE argument", ErrFlagParse)
		}
		path := c.Args().First()

		d, err := openDict(c, path)
		if err != nil {
			return err
		}

		output := c.String("output")
		if output == "" {
			output = defaultOutput(path)
		}
		if output == "-" {
			return tsv.Write(c.App.Writer, d.Entries())
		}

		if err := tsv.WriteFile(output, d.Entries()); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"output":  output,
			"entries": len(d.Entries()),
		}).Info("exported dictionary")
		return nil
	},
}
