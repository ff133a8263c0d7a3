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

// Package index implements a read-only sorted array index keyed by string.
package index

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Index is a generic sorted array index. Values are ordered by the key
// returned from their String method.
type Index[V fmt.Stringer] struct {
	values []V
	cmp    func(string, string) int
}

// New creates an index from the given values and comparison function. The
// values slice is copied so later changes by the caller are not observed.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b.
func New[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &Index[V]{
		values: sorted,
		cmp:    cmp,
	}
}

// Search performs a binary search over the index and returns all values whose
// key equals query. The returned slice must not be modified.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.values), func(i int) int {
		return idx.cmp(query, idx.values[i].String())
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.cmp(query, idx.values[j].String()) == 0 {
		j++
	}
	return idx.values[i:j:j]
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// All iterates over the values in key order.
func (idx *Index[V]) All() iter.Seq[V] {
	return slices.Values(idx.values)
}
