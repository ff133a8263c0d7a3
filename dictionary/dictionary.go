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
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrNotFound indicates that a dictionary file does not exist.
	ErrNotFound = errors.New("dictionary not found")

	// ErrParse indicates that a dictionary file is not a JSON object of
	// strokes to translations.
	ErrParse = errors.New("parsing dictionary")
)

// Stroke identifies a stroke or a sequence of strokes separated by "/", e.g.
// "TEFT" or "TEFT/-D".
type Stroke string

// String implements [fmt.Stringer].
func (s Stroke) String() string {
	return string(s)
}

// CompareStrokes orders strokes by byte-wise lexical comparison.
func CompareStrokes(a, b Stroke) int {
	return strings.Compare(string(a), string(b))
}

// Translation is the text produced by a stroke.
type Translation string

// Dictionary maps strokes to translations. A Dictionary is not modified after
// it is created except by [Dictionary.Invert], which consumes it.
type Dictionary struct {
	entries map[Stroke]Translation
}

// New reads a dictionary from r. The content must be a single JSON object
// mapping stroke strings to translation strings.
func New(r io.Reader) (*Dictionary, error) {
	var raw map[string]*string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}
	// Only whitespace may follow the object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after object", ErrParse)
	}

	entries := make(map[Stroke]Translation, len(raw))
	for s, t := range raw {
		if t == nil {
			return nil, fmt.Errorf("%w: stroke %q has a null translation", ErrParse, s)
		}
		entries[Stroke(s)] = Translation(*t)
	}
	return &Dictionary{entries: entries}, nil
}

// Load reads the dictionary at path. Files ending in ".gz" are decompressed
// with gzip and files ending in ".dz" with dictzip.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("opening dictionary %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrParse, path, err)
		}
		r = z
	}

	d, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Len returns the number of strokes in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Translation returns the translation for the stroke.
func (d *Dictionary) Translation(s Stroke) (Translation, bool) {
	t, ok := d.entries[s]
	return t, ok
}

// All iterates over the dictionary's entries in stroke order.
func (d *Dictionary) All() iter.Seq2[Stroke, Translation] {
	return func(yield func(Stroke, Translation) bool) {
		for _, s := range slices.SortedFunc(maps.Keys(d.entries), CompareStrokes) {
			if !yield(s, d.entries[s]) {
				return
			}
		}
	}
}
