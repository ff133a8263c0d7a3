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

// Package config holds the lookup server configuration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Build  BuildConfig  `yaml:"build"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"STENO_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"STENO_SERVER_PORT"             env-default:"8080"`
	Workers         int           `yaml:"workers"          env:"STENO_SERVER_WORKERS"          env-default:"16"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"STENO_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"STENO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"STENO_LOG_FORMAT" env-default:"text"`
}

// BuildConfig holds index building settings.
type BuildConfig struct {
	// Concurrency limits the number of dictionaries loaded at once. Zero
	// means no limit.
	Concurrency int `yaml:"concurrency" env:"STENO_BUILD_CONCURRENCY" env-default:"0"`
}

// Addr returns the host:port address the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
