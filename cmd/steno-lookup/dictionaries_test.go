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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-steno/dictionary"
	"github.com/ianlewis/go-steno/plover"
)

// writeFile writes contents to name under dir and returns its path.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// writePloverConfig writes a Plover config listing dicts in the default
// section. The second dictionary is disabled.
func writePloverConfig(t *testing.T, dir string, dicts ...string) string {
	t.Helper()

	list := "["
	for i, d := range dicts {
		if i > 0 {
			list += ", "
		}
		enabled := "true"
		if i == 1 {
			enabled = "false"
		}
		list += `{"enabled": ` + enabled + `, "path": "` + filepath.ToSlash(d) + `"}`
	}
	list += "]"

	return writeFile(t, dir, "plover.cfg", "[Machine Configuration]\nmachine_type = Keyboard\n\n["+
		plover.DefaultSection+"]\ndictionaries = "+list+"\n")
}

func TestDictionaryPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mainDict := filepath.Join(dir, "main.json")
	disabled := filepath.Join(dir, "disabled.json")
	user := filepath.Join(dir, "user.json")
	cfg := writePloverConfig(t, dir, user, disabled, mainDict)

	globDir := filepath.Join(dir, "extra")
	b := writeFile(t, globDir, "b.json", "{}")
	a := writeFile(t, globDir, "a.json", "{}")
	nested := writeFile(t, globDir, "nested/c.json", "{}")
	writeFile(t, globDir, "notes.txt", "")
	bracketed := writeFile(t, dir, "dict[1].json", "{}")
	braced := writeFile(t, dir, "{user}.json", "{}")

	tests := []struct {
		name     string
		opts     pathOptions
		expected []string
		err      error
	}{
		{
			name: "config only",
			opts: pathOptions{
				configPath: cfg,
				section:    plover.DefaultSection,
			},
			expected: []string{user, mainDict},
		},
		{
			name: "config then extra",
			opts: pathOptions{
				configPath: cfg,
				section:    plover.DefaultSection,
				dicts:      []string{"extra.json", user},
			},
			// Duplicates are kept.
			expected: []string{user, mainDict, "extra.json", user},
		},
		{
			name: "default section",
			opts: pathOptions{
				configPath: cfg,
			},
			expected: []string{user, mainDict},
		},
		{
			name: "noconfig",
			opts: pathOptions{
				configPath: cfg,
				noConfig:   true,
				dicts:      []string{"b.json", "a.json"},
			},
			expected: []string{"b.json", "a.json"},
		},
		{
			name: "noconfig no dicts",
			opts: pathOptions{
				noConfig: true,
			},
			expected: nil,
		},
		{
			name: "glob",
			opts: pathOptions{
				noConfig: true,
				dicts:    []string{filepath.Join(globDir, "*.json")},
			},
			expected: []string{a, b},
		},
		{
			name: "doublestar glob",
			opts: pathOptions{
				noConfig: true,
				dicts:    []string{"first.json", filepath.Join(globDir, "**", "*.json")},
			},
			expected: []string{"first.json", a, b, nested},
		},
		{
			name: "existing file with glob meta",
			opts: pathOptions{
				noConfig: true,
				dicts:    []string{bracketed, braced},
			},
			expected: []string{bracketed, braced},
		},
		{
			name: "glob no match",
			opts: pathOptions{
				noConfig: true,
				dicts:    []string{filepath.Join(globDir, "*.yaml")},
			},
			err: dictionary.ErrNotFound,
		},
		{
			name: "config not found",
			opts: pathOptions{
				configPath: filepath.Join(dir, "missing.cfg"),
			},
			err: plover.ErrNotFound,
		},
		{
			name: "section missing",
			opts: pathOptions{
				configPath: cfg,
				section:    "System: Melani",
			},
			err: plover.ErrSectionMissing,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := dictionaryPaths(test.opts)
			if !errors.Is(err, test.err) {
				t.Fatalf("dictionaryPaths: want error %v, got %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("dictionaryPaths (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestHasGlobMeta(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"main.json":            false,
		"/home/user/main.json": false,
		"*.json":               true,
		"dicts/**/*.json":      true,
		"dict?.json":           true,
		"dict[0-9].json":       true,
		"{main,user}.json":     true,
	}

	for path, expected := range tests {
		if got := hasGlobMeta(path); got != expected {
			t.Errorf("hasGlobMeta(%q): want %v, got %v", path, expected, got)
		}
	}
}
