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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only spaces",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "no change",
			input:    "as well as",
			expected: "as well as",
		},
		{
			name:     "leading and trailing",
			input:    "  as well as\t",
			expected: "as well as",
		},
		{
			name:     "internal runs",
			input:    "as \t well\n\nas",
			expected: "as well as",
		},
		{
			name:     "unicode spaces",
			input:    "の　よう",
			expected: "の よう",
		},
		{
			name:     "plover commands untouched",
			input:    "{^}  {-|}",
			expected: "{^} {-|}",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(NewWhitespace(), test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Transform (-want, +got):\n%s", diff)
			}
		})
	}
}
