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

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv is the environment variable naming the configuration file.
const PathEnv = "STENO_CONFIG_PATH"

// ErrConfig is the parent error for configuration errors.
var ErrConfig = errors.New("config")

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
// The file is path, or the value of STENO_CONFIG_PATH when path is empty. With
// neither set only the environment and defaults are used. A file that was
// named but does not exist is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: file %s: %w", ErrConfig, path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: read env: %w", ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: validate: %w", ErrConfig, err)
	}

	return &cfg, nil
}
