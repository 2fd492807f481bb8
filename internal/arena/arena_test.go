// Copyright 2024-2026 The FormatKit Authors
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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formatkit/linewrap/internal/arena"
)

func TestArenaZero(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	assert.Equal(t, 0, a.Len())
	assert.Panics(t, func() { a.At(0) })
}

func TestArenaStableAddresses(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]

	// Enough elements to cross several block boundaries.
	const n = 200
	ptrs := make([]*int, n)
	for i := range n {
		ptrs[i] = a.New(i)
	}

	require.Equal(t, n, a.Len())
	for i := range n {
		assert.Same(t, ptrs[i], a.At(i))
		assert.Equal(t, i, *a.At(i))
	}
}

func TestArenaAll(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	a.New("a")
	a.New("b")
	a.New("c")

	var got []string
	for i, s := range a.All() {
		assert.Equal(t, len(got), i)
		got = append(got, *s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// Early break must not visit further elements.
	var visited int
	for range a.All() {
		visited++
		break
	}
	assert.Equal(t, 1, visited)
}

func TestArenaAtOutOfRange(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	a.New(42)

	assert.Panics(t, func() { a.At(-1) })
	assert.Panics(t, func() { a.At(1) })
}
