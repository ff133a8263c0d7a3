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

	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "Print the dictionaries that would be loaded in precedence order",
	Flags: []cli.Flag{
		helpFlag(),
	},
	HideHelp:     true,
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}

		paths, err := dictionaryPaths(pathOptionsFrom(c))
		if err != nil {
			return err
		}
		for _, p := range paths {
			if _, err := fmt.Fprintln(c.App.Writer, p); err != nil {
				return err //nolint:wrapcheck // output errors are not wrapped
			}
		}
		return nil
	},
}
