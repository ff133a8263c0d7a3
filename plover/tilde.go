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

package plover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces a leading "~" path element with the user's home
// directory. Other paths, including "~user" forms, are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if !hasTilde(path) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: expanding %q", ErrHomeNotFound, path)
	}
	return expandTilde(home, path), nil
}

func hasTilde(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator))
}

func expandTilde(home, path string) string {
	if path == "~" {
		return home
	}
	rest := path[2:]
	if home == "/" {
		return "/" + rest
	}
	return filepath.Join(home, rest)
}
