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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-steno/internal/config"
	"github.com/ianlewis/go-steno/internal/logger"
	"github.com/ianlewis/go-steno/internal/server"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve lookups over HTTP",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "server-config",
			Usage:   "read server settings from the YAML file at `PATH`",
			EnvVars: []string{config.PathEnv},
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "listen on `HOST`",
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "listen on `PORT`",
			Aliases: []string{"p"},
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "serve at most `N` requests at once",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "load at most `N` dictionaries at once (0 means no limit)",
		},
		helpFlag(),
	},
	HideHelp:     true,
	OnUsageError: onUsageError,
	Action: func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}

		cfg, err := serverConfig(c)
		if err != nil {
			return err
		}

		log := logger.New(c.App.ErrWriter, cfg.Log)

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		set, err := buildIndexSet(ctx, c, cfg.Build.Concurrency, log)
		if err != nil {
			return err
		}
		log.Info("index built",
			slog.Any("dictionaries", set.Names()),
			slog.Int("translations", set.Translations()),
		)

		return server.New(cfg.Server, set, log).Run(ctx) //nolint:wrapcheck // error is already descriptive
	},
}

// serverConfig loads the server configuration and applies the command line
// overrides.
func serverConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("server-config"))
	if err != nil {
		return nil, err //nolint:wrapcheck // error includes the path
	}

	if c.IsSet("host") {
		cfg.Server.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}
	if c.IsSet("workers") {
		cfg.Server.Workers = c.Int("workers")
	}
	if c.IsSet("concurrency") {
		cfg.Build.Concurrency = c.Int("concurrency")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, nil
}
