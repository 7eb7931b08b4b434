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

package index

import (
	"slices"
	"sort"
)

// Index is a generic sorted array index over values keyed by a string.
// Values with equal keys keep their original relative order.
type Index[V any] struct {
	// values is sorted by key.
	values []V
	keys   []string

	cmp func(string, string) int
}

// NewIndex creates an index from the given slice, key function and
// comparison function. cmp(a, b) should return a negative number when a < b,
// a positive number when a > b and zero when a == b or a and b are
// incomparable in the sense of a strict weak ordering.
func NewIndex[V any](values []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	order := make([]int, len(values))
	keys := make([]string, len(values))
	for i, v := range values {
		order[i] = i
		keys[i] = key(v)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp(keys[a], keys[b])
	})

	idx := &Index[V]{
		values: make([]V, len(values)),
		keys:   make([]string, len(values)),
		cmp:    cmp,
	}
	for i, j := range order {
		idx.values[i] = values[j]
		idx.keys[i] = keys[j]
	}
	return idx
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// Search performs a binary search over the index and returns matching values.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.keys), func(i int) int {
		return idx.cmp(query, idx.keys[i])
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.keys) && idx.cmp(query, idx.keys[j]) == 0; j++ {
	}
	return idx.values[i:j]
}
