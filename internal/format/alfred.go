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

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ianlewis/go-steno"
	"github.com/ianlewis/go-steno/dictionary"
)

// AlfredResults is an Alfred script filter result list.
// See https://www.alfredapp.com/help/workflows/inputs/script-filter/json/
type AlfredResults struct {
	Items []AlfredItem `json:"items"`
}

// AlfredItem is a single Alfred script filter item.
type AlfredItem struct {
	UID          string      `json:"uid,omitempty"`
	Type         string      `json:"type,omitempty"`
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle,omitempty"`
	Arg          string      `json:"arg,omitempty"`
	Icon         *AlfredIcon `json:"icon,omitempty"`
	Valid        bool        `json:"valid"`
	Match        string      `json:"match,omitempty"`
	Autocomplete string      `json:"autocomplete,omitempty"`
}

// AlfredIcon is the icon of an Alfred item.
type AlfredIcon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

// Alfred writes the strokes as Alfred script filter JSON, one item per
// stroke.
func Alfred(w io.Writer, _ dictionary.Translation, matches []steno.Match) error {
	results := AlfredResults{
		Items: []AlfredItem{},
	}
	for _, m := range matches {
		for _, s := range m.Strokes {
			results.Items = append(results.Items, AlfredItem{
				Title:    s.String(),
				Subtitle: filepath.Base(m.Dictionary),
				Arg:      s.String(),
				Valid:    true,
			})
		}
	}

	if err := json.NewEncoder(w).Encode(results); err != nil {
		return fmt.Errorf("writing alfred json: %w", err)
	}
	return nil
}
