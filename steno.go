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

package steno

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-steno/dictionary"
)

// Options are options for building an IndexSet.
type Options struct {
	// Dictionary are the options used to invert each dictionary.
	Dictionary *dictionary.Options

	// Concurrency is the maximum number of dictionaries loaded at once. Zero
	// or a negative value means no limit.
	Concurrency int
}

// DefaultOptions is the default options for Build.
var DefaultOptions = &Options{
	Dictionary: dictionary.DefaultOptions,
}

// IndexSet is an ordered set of inverted dictionaries. Slot i holds the
// dictionary loaded from the i-th path given to Build.
type IndexSet struct {
	names []string
	dicts []*dictionary.Inverted
}

// Match is the strokes for a query found in a single dictionary.
type Match struct {
	// Dictionary is the path the dictionary was loaded from.
	Dictionary string

	// Strokes are the matching strokes in sorted order.
	Strokes []dictionary.Stroke
}

// Build loads and inverts the dictionaries at paths concurrently. The order
// of the resulting IndexSet follows paths regardless of the order in which
// loads complete. If any dictionary fails to load Build returns the first
// error encountered and no IndexSet.
func Build(ctx context.Context, paths []string, options *Options) (*IndexSet, error) {
	if options == nil {
		options = DefaultOptions
	}

	dicts := make([]*dictionary.Inverted, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if options.Concurrency > 0 {
		g.SetLimit(options.Concurrency)
	}
	for i, path := range paths {
		g.Go(func() error {
			// Skip loading once another dictionary has failed.
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck // context error should not be wrapped
			}

			d, err := dictionary.Load(path)
			if err != nil {
				return fmt.Errorf("loading dictionary %d: %w", i, err)
			}
			// Each goroutine writes only its own slot.
			dicts[i] = d.Invert(options.Dictionary)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // error is wrapped in the goroutine
	}

	return &IndexSet{
		names: slices.Clone(paths),
		dicts: dicts,
	}, nil
}

// New returns an IndexSet from already inverted dictionaries. names[i] is the
// name reported for dicts[i] by LookupEach.
func New(names []string, dicts []*dictionary.Inverted) (*IndexSet, error) {
	if len(names) != len(dicts) {
		return nil, fmt.Errorf("got %d names for %d dictionaries", len(names), len(dicts))
	}
	for i, d := range dicts {
		if d == nil {
			return nil, fmt.Errorf("dictionary %d (%q) is nil", i, names[i])
		}
	}
	return &IndexSet{
		names: slices.Clone(names),
		dicts: slices.Clone(dicts),
	}, nil
}

// Lookup returns the strokes that produce term. The strokes of each
// dictionary are appended in IndexSet order and are not deduplicated across
// dictionaries. Lookup returns an empty, non-nil slice when no dictionary
// contains term.
func (s *IndexSet) Lookup(term dictionary.Translation) []dictionary.Stroke {
	strokes := []dictionary.Stroke{}
	for _, d := range s.dicts {
		strokes = append(strokes, d.Get(term)...)
	}
	return strokes
}

// LookupEach returns the strokes that produce term grouped by dictionary in
// IndexSet order. Dictionaries without a match are omitted.
func (s *IndexSet) LookupEach(term dictionary.Translation) []Match {
	var matches []Match
	for i, d := range s.dicts {
		if strokes := d.Get(term); len(strokes) > 0 {
			matches = append(matches, Match{
				Dictionary: s.names[i],
				Strokes:    strokes,
			})
		}
	}
	return matches
}

// Len returns the number of dictionaries in the set.
func (s *IndexSet) Len() int {
	return len(s.dicts)
}

// Names returns the names of the dictionaries in IndexSet order.
func (s *IndexSet) Names() []string {
	return slices.Clone(s.names)
}

// Translations returns the total number of distinct translations summed over
// all dictionaries.
func (s *IndexSet) Translations() int {
	n := 0
	for _, d := range s.dicts {
		n += d.Len()
	}
	return n
}
