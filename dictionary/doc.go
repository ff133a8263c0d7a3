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

// Package dictionary implements Plover-style steno dictionaries and their
// inverse.
//
// A steno dictionary is a JSON object whose keys are strokes and whose values
// are translations:
//
//	{
//	  "TEFT": "test",
//	  "TEF": "test",
//	  "TEFTS": "tests"
//	}
//
// Many strokes may produce the same translation but each stroke produces
// exactly one. An [Inverted] dictionary maps each translation back to the
// sorted list of strokes that produce it and is what lookups are served from.
package dictionary
