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
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-steno"
	"github.com/ianlewis/go-steno/dictionary"
	"github.com/ianlewis/go-steno/plover"
)

// pathOptions selects the dictionaries to load.
type pathOptions struct {
	// configPath is the Plover config. Empty means the default location.
	configPath string
	noConfig   bool
	section    string

	// dicts are extra dictionaries loaded after the Plover config ones.
	dicts []string
}

func pathOptionsFrom(c *cli.Context) pathOptions {
	return pathOptions{
		configPath: c.String("config"),
		noConfig:   c.Bool("noconfig"),
		section:    c.String("section"),
		dicts:      c.StringSlice("dict"),
	}
}

// dictionaryPaths returns the dictionaries to load in precedence order: the
// enabled dictionaries from the Plover config followed by the extra
// dictionaries. Duplicates are kept.
func dictionaryPaths(opts pathOptions) ([]string, error) {
	var paths []string

	if !opts.noConfig {
		configPath := opts.configPath
		if configPath == "" {
			var err error
			configPath, err = plover.DefaultConfigPath()
			if err != nil {
				return nil, fmt.Errorf("locating Plover config: %w", err)
			}
		}

		section := opts.section
		if section == "" {
			section = plover.DefaultSection
		}

		dicts, err := plover.Dictionaries(configPath, section)
		if err != nil {
			return nil, err //nolint:wrapcheck // error includes the path
		}
		enabled, err := plover.EnabledPaths(dicts)
		if err != nil {
			return nil, err //nolint:wrapcheck // error is already descriptive
		}
		paths = append(paths, enabled...)
	}

	for _, p := range opts.dicts {
		if !hasGlobMeta(p) || exists(p) {
			paths = append(paths, p)
			continue
		}
		matches, err := expandGlob(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}

// exists reports whether path names an existing file. Such paths are never
// treated as globs even if they contain glob meta characters.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// expandGlob returns the files matching pattern in lexical order.
func expandGlob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrFlagParse, pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", dictionary.ErrNotFound, pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

// buildIndexSet resolves the dictionary paths from the command line and
// builds an IndexSet from them.
func buildIndexSet(ctx context.Context, c *cli.Context, concurrency int, logger *slog.Logger) (*steno.IndexSet, error) {
	paths, err := dictionaryPaths(pathOptionsFrom(c))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		logger.Warn("no dictionaries to load")
	}

	opts := &steno.Options{
		Dictionary:  dictionary.DefaultOptions,
		Concurrency: concurrency,
	}
	if c.Bool("fold-whitespace") {
		opts.Dictionary = dictionary.WhitespaceFolding
	}

	set, err := steno.Build(ctx, paths, opts)
	if err != nil {
		return nil, err //nolint:wrapcheck // error includes the path
	}
	logger.Debug("built index",
		slog.Int("dictionaries", set.Len()),
		slog.Int("translations", set.Translations()),
	)
	return set, nil
}
