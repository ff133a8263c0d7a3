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

//go:build windows

package plover

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default location of plover.cfg under
// %LOCALAPPDATA%.
func DefaultConfigPath() (string, error) {
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, "plover", "plover", "plover.cfg"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeNotFound
	}
	return filepath.Join(home, "AppData", "Local", "plover", "plover", "plover.cfg"), nil
}
