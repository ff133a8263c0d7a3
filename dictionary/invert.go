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

package dictionary

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-steno/internal/folding"
	"github.com/ianlewis/go-steno/internal/index"
)

// Options are options for inverting a dictionary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// whitespace folding) on translations and lookup queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for inversion. Translations are
// matched exactly.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// WhitespaceFolding are options that fold whitespace in translations and
// queries so that e.g. "as  well" matches "as well".
var WhitespaceFolding = &Options{
	Folder: folding.NewWhitespace,
}

// group is the set of strokes for a single (folded) translation.
type group struct {
	key     string
	strokes []Stroke
}

func (g *group) String() string {
	return g.key
}

// Inverted maps translations to the strokes that produce them. An Inverted
// dictionary is immutable and safe for concurrent use.
type Inverted struct {
	index  *index.Index[*group]
	folder func() transform.Transformer
}

// Invert builds the inverse of d. Strokes for each translation are sorted
// with [CompareStrokes]. Invert consumes d: its entries are released and d is
// empty afterwards.
//
// If the folder returns an error for a translation the translation is indexed
// as is.
func (d *Dictionary) Invert(options *Options) *Inverted {
	if options == nil {
		options = DefaultOptions
	}
	folder := DefaultOptions.Folder
	if options.Folder != nil {
		folder = options.Folder
	}

	byKey := make(map[string][]Stroke, len(d.entries))
	for s, t := range d.entries {
		k := fold(folder, string(t))
		byKey[k] = append(byKey[k], s)
	}
	d.entries = nil

	groups := make([]*group, 0, len(byKey))
	for k, strokes := range byKey {
		slices.SortFunc(strokes, CompareStrokes)
		groups = append(groups, &group{
			key:     k,
			strokes: slices.Compact(strokes),
		})
	}

	return &Inverted{
		index:  index.New(groups, strings.Compare),
		folder: folder,
	}
}

// Get returns the sorted strokes that produce t, or nil if no stroke does.
// The returned slice belongs to the caller.
func (inv *Inverted) Get(t Translation) []Stroke {
	var strokes []Stroke
	for _, g := range inv.index.Search(fold(inv.folder, string(t))) {
		strokes = append(strokes, g.strokes...)
	}
	return strokes
}

// Len returns the number of distinct translations.
func (inv *Inverted) Len() int {
	return inv.index.Len()
}

// Translations iterates over the translations and their strokes in
// translation order. Translations are the folded keys, so with
// [WhitespaceFolding] " a  b " is yielded as "a b".
func (inv *Inverted) Translations() iter.Seq2[Translation, []Stroke] {
	return func(yield func(Translation, []Stroke) bool) {
		for g := range inv.index.All() {
			if !yield(Translation(g.key), slices.Clone(g.strokes)) {
				return
			}
		}
	}
}

func fold(folder func() transform.Transformer, s string) string {
	folded, _, err := transform.String(folder(), s)
	if err != nil {
		return s
	}
	return folded
}
