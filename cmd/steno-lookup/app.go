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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-steno/plover"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrStenoLookup is a parent error for all command errors.
var ErrStenoLookup = errors.New("steno-lookup")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrStenoLookup)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument. Each command declares its own --help instead.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode maps an error returned by the app to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func helpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "help",
		Usage:              "print this help text and exit",
		Aliases:            []string{"h"},
		DisableDefaultText: true,
	}
}

func printVersion(c *cli.Context) error {
	v := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s\n%s\n", c.App.Name, v.String())
	return err //nolint:wrapcheck // output errors are not wrapped
}

func newStenoApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up the steno strokes for a word.",
		Description: strings.Join([]string{
			"Reverse lookup for Plover steno dictionaries written in Go.",
			"http://github.com/ianlewis/go-steno",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read the dictionary list from the Plover config at `PATH`",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:               "noconfig",
				Usage:              "do not read the Plover config",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "section",
				Usage:   "Plover config `SECTION` holding the dictionary list",
				Aliases: []string{"s"},
				Value:   plover.DefaultSection,
			},
			&cli.StringSliceFlag{
				Name:    "dict",
				Usage:   "load the dictionary at `PATH` after those in the Plover config (may be a glob)",
				Aliases: []string{"d"},
			},
			&cli.BoolFlag{
				Name:               "fold-whitespace",
				Usage:              "ignore leading, trailing and repeated whitespace when matching",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			helpFlag(),
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			lookupCommand,
			serveCommand,
			listCommand,
		},
	}
}
