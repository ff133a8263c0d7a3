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
	"fmt"
	"io"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-steno"
	"github.com/ianlewis/go-steno/dictionary"
)

// Text writes the strokes as a table with the dictionary each came from.
func Text(w io.Writer, term dictionary.Translation, matches []steno.Match) error {
	if len(matches) == 0 {
		if _, err := fmt.Fprintf(w, "No strokes found for %q\n", term); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
		return nil
	}

	tbl := table.New("Stroke", "Dictionary").WithWriter(w)
	for _, m := range matches {
		for _, s := range m.Strokes {
			tbl.AddRow(s, m.Dictionary)
		}
	}
	tbl.Print()
	return nil
}
