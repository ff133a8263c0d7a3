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

// Package format writes lookup results for command line consumers.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ianlewis/go-steno"
	"github.com/ianlewis/go-steno/dictionary"
)

// ErrUnknownFormat indicates that no formatter has the requested name.
var ErrUnknownFormat = errors.New("unknown format")

// Formatter writes the matches for term to w.
type Formatter func(w io.Writer, term dictionary.Translation, matches []steno.Match) error

var formatters = map[string]Formatter{
	"text":   Text,
	"json":   JSON,
	"alfred": Alfred,
}

// Get returns the formatter with the given name.
func Get(name string) (Formatter, error) {
	f, ok := formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Names returns the names of all formatters.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Strokes flattens matches into a single list in match order.
func Strokes(matches []steno.Match) []dictionary.Stroke {
	strokes := []dictionary.Stroke{}
	for _, m := range matches {
		strokes = append(strokes, m.Strokes...)
	}
	return strokes
}

// JSON writes the strokes as a JSON array.
func JSON(w io.Writer, _ dictionary.Translation, matches []steno.Match) error {
	if err := json.NewEncoder(w).Encode(Strokes(matches)); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
