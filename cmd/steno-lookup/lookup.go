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
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-steno/dictionary"
	"github.com/ianlewis/go-steno/internal/config"
	"github.com/ianlewis/go-steno/internal/format"
	"github.com/ianlewis/go-steno/internal/logger"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Print the strokes for a word",
	ArgsUsage: "TERM",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (" + strings.Join(format.Names(), ", ") + ")",
			Aliases: []string{"f"},
			Value:   "text",
		},
		helpFlag(),
	},
	HideHelp:     true,
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}

		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one TERM, got %d arguments", ErrFlagParse, c.NArg())
		}
		term := dictionary.Translation(c.Args().First())

		f, err := format.Get(c.String("format"))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		log := logger.New(c.App.ErrWriter, config.LogConfig{Level: "warn", Format: "text"})
		set, err := buildIndexSet(c.Context, c, 0, log)
		if err != nil {
			return err
		}

		return f(c.App.Writer, term, set.LookupEach(term))
	},
}
