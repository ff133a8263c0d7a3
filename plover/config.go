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

// Package plover reads the dictionary list from a Plover configuration file.
//
// Plover stores its configuration in an INI file. Each system section holds a
// "dictionaries" key whose value is a JSON array:
//
//	[System: English Stenotype]
//	dictionaries = [{"enabled": true, "path": "~/steno/user.json"}, {"enabled": false, "path": "main.json"}]
//
// Dictionaries are listed in order of precedence, highest first.
package plover

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// DefaultSection is the configuration section read by default.
const DefaultSection = "System: English Stenotype"

const dictionariesKey = "dictionaries"

var (
	// ErrNotFound indicates that the configuration file does not exist.
	ErrNotFound = errors.New("plover config not found")

	// ErrParse indicates that the configuration file or its dictionary list
	// is malformed.
	ErrParse = errors.New("parsing plover config")

	// ErrSectionMissing indicates that the requested section, or its
	// dictionaries key, is missing.
	ErrSectionMissing = errors.New("plover config section missing")

	// ErrHomeNotFound indicates that the user's home directory could not be
	// determined.
	ErrHomeNotFound = errors.New("home directory not found")
)

// DictionaryConfig is a dictionary entry in the configuration.
type DictionaryConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// Dictionaries returns the dictionary list in section of the configuration
// file at path.
func Dictionaries(path, section string) ([]DictionaryConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("reading plover config: %w", err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
		IgnoreContinuation:         true,
		KeyValueDelimiters:         "=",
	}, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
	}

	sec, err := cfg.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %q", ErrSectionMissing, section, path)
	}
	if !sec.HasKey(dictionariesKey) {
		return nil, fmt.Errorf("%w: no %s in %q", ErrSectionMissing, dictionariesKey, section)
	}

	var dicts []DictionaryConfig
	if err := json.Unmarshal([]byte(sec.Key(dictionariesKey).String()), &dicts); err != nil {
		return nil, fmt.Errorf("%w: %s in %q: %w", ErrParse, dictionariesKey, section, err)
	}
	return dicts, nil
}

// EnabledPaths returns the paths of the enabled dictionaries in order with
// the home directory expanded.
func EnabledPaths(dicts []DictionaryConfig) ([]string, error) {
	var paths []string
	for _, d := range dicts {
		if !d.Enabled {
			continue
		}
		p, err := ExpandTilde(d.Path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
