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

// Package steno implements reverse lookup of steno dictionaries: given a
// word or phrase it returns the strokes that produce it.
//
// Lookups are served from an [IndexSet], an ordered list of inverted
// dictionaries built once from a list of dictionary files:
//
//	set, err := steno.Build(ctx, []string{"main.json", "user.json"}, nil)
//	if err != nil {
//		// ...
//	}
//	strokes := set.Lookup("test")
//
// Dictionaries earlier in the list take precedence, so their strokes come
// first in the result. An IndexSet is never modified after Build returns and
// may be shared by any number of goroutines.
package steno
