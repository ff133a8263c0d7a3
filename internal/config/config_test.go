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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:paralleltest // modifies the environment.
func TestLoad_defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 16, cfg.Server.Workers)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, 0, cfg.Build.Concurrency)
	require.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
}

//nolint:paralleltest // modifies the environment.
func TestLoad_yaml(t *testing.T) {
	path := writeYAML(t, `
server:
  host: "0.0.0.0"
  port: 9090
  workers: 4
  shutdown_timeout: "2s"
log:
  level: "debug"
  format: "json"
build:
  concurrency: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	require.Equal(t, 4, cfg.Server.Workers)
	require.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 2, cfg.Build.Concurrency)
}

//nolint:paralleltest // modifies the environment.
func TestLoad_envOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  port: 9090
`)
	t.Setenv(PathEnv, path)
	t.Setenv("STENO_SERVER_PORT", "7070")
	t.Setenv("STENO_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 16, cfg.Server.Workers)
}

//nolint:paralleltest // modifies the environment.
func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}

//nolint:paralleltest // modifies the environment.
func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "workers", yaml: "server:\n  workers: -1\n"},
		{name: "port", yaml: "server:\n  port: 70000\n"},
		{name: "log level", yaml: "log:\n  level: loud\n"},
		{name: "log format", yaml: "log:\n  format: xml\n"},
		{name: "concurrency", yaml: "build:\n  concurrency: -2\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeYAML(t, test.yaml))
			require.ErrorIs(t, err, ErrConfig)
		})
	}
}
