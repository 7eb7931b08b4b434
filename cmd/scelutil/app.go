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
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-scel"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrScelutil is a parent error for all command errors.
var ErrScelutil = errors.New("scelutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrScelutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// log is the command's diagnostic logger. It writes to the app's ErrWriter.
var log = logrus.New()

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// options returns the decoding options from the global flags.
func options(c *cli.Context) *scel.Options {
	return &scel.Options{
		Separator: c.String("separator"),
	}
}

// openDict opens a single dictionary file and logs decoding problems.
func openDict(c *cli.Context, path string) (*scel.Dictionary, error) {
	d, err := scel.Open(path, options(c))
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"path":    d.Path(),
		"entries": len(d.Entries()),
	}
	if !d.Complete() {
		log.WithFields(fields).Warn("dictionary truncated, some words may be missing")
	} else {
		log.WithFields(fields).Debug("decoded dictionary")
	}
	return d, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrScelutil, err)
	}
	return nil
}

func newScelApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert pinyin input method dictionaries.",
		Description: strings.Join([]string{
			"Reads Sogou .scel, QQ .qcel and plain text word lists.",
			"Supported extensions: " + strings.Join(scel.Extensions(), ", "),
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "separator",
				Usage:   "join pinyin syllables with `SEP`",
				Aliases: []string{"s"},
				Value:   scel.DefaultOptions.Separator,
				EnvVars: []string{"SCELUTIL_SEPARATOR"},
			},
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "list dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print diagnostic logs",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Before: func(c *cli.Context) error {
			log.SetOutput(c.App.ErrWriter)
			log.SetLevel(logrus.WarnLevel)
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			listCommand,
			showCommand,
			exportCommand,
			queryCommand,
		},
	}
}
