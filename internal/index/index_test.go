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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct {
	Key   string
	Value int
}

func pairKey(p pair) string {
	return p.Key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []pair{
		{"foo", 0},
		{"bar", 1},
		{"baz", 2},
		{"bar", 3},
	}

	tests := []struct {
		name     string
		query    string
		cmp      func(string, string) int
		expected []pair
	}{
		{
			name:     "single results",
			query:    "foo",
			cmp:      strings.Compare,
			expected: []pair{{"foo", 0}},
		},
		{
			name:     "multiple results keep order",
			query:    "bar",
			cmp:      strings.Compare,
			expected: []pair{{"bar", 1}, {"bar", 3}},
		},
		{
			name:     "no results",
			query:    "none",
			cmp:      strings.Compare,
			expected: nil,
		},
		{
			name:  "case insensitive",
			query: "BAZ",
			cmp: func(a, b string) int {
				return strings.Compare(strings.ToLower(a), strings.ToLower(b))
			},
			expected: []pair{{"baz", 2}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(values, pairKey, test.cmp)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	index := NewIndex(nil, pairKey, strings.Compare)
	if want, got := 0, index.Len(); want != got {
		t.Errorf("Len; want: %d, got: %d", want, got)
	}
	if got := index.Search("foo"); got != nil {
		t.Errorf("Search; want: nil, got: %v", got)
	}
}

func TestNewIndex_doesNotModify(t *testing.T) {
	t.Parallel()

	values := []pair{{"b", 0}, {"a", 1}}
	_ = NewIndex(values, pairKey, strings.Compare)

	if diff := cmp.Diff([]pair{{"b", 0}, {"a", 1}}, values); diff != "" {
		t.Fatalf("values modified (-want, +got):\n%s", diff)
	}
}
