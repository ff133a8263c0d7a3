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

// Package folding provides text transformers used to normalize translations
// and queries before they are compared.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace folds whitespace. Leading and trailing whitespace is dropped and
// every internal run of whitespace becomes a single ASCII space.
type Whitespace struct {
	// seenText is set once the first non-space rune has been written.
	seenText bool

	// pending is set while inside a run of whitespace that follows text.
	pending bool
}

// NewWhitespace returns a new whitespace folding transformer.
func NewWhitespace() transform.Transformer {
	return &Whitespace{}
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			w.pending = w.seenText
			nSrc += size
			continue
		}

		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		// r may be utf8.RuneError for invalid input, which is written out as
		// the three byte replacement character.
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}
