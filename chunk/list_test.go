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

package chunk_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formatkit/linewrap/chunk"
)

func TestListAppend(t *testing.T) {
	t.Parallel()

	var l chunk.List
	first := l.Append("a")
	for i := range 100 {
		l.Append(fmt.Sprint(i))
	}

	require.Equal(t, 101, l.Len())
	assert.Same(t, first, l.At(0), "chunk pointers stay valid as the list grows")
	assert.Equal(t, "a", first.Text())
	assert.Equal(t, "99", l.At(100).Text())

	var count int
	for i, c := range l.All() {
		assert.Same(t, l.At(i), c)
		count++
	}
	assert.Equal(t, 101, count)
}

func TestListSpans(t *testing.T) {
	t.Parallel()

	var l chunk.List
	l.StartSpan(chunk.CostNormal)
	c0 := l.Append("f(")
	l.StartSpan(chunk.CostPositionalArguments)
	c1 := l.Append("a,")
	c2 := l.Append("b")
	inner := l.EndSpan()
	c3 := l.Append(")")
	outer := l.EndSpan()
	l.Finish()

	require.NotNil(t, inner)
	require.NotNil(t, outer)
	assert.Equal(t, chunk.CostPositionalArguments, inner.Cost())
	assert.Equal(t, chunk.CostNormal, outer.Cost())
	assert.NotSame(t, inner, outer)

	assert.Equal(t, []*chunk.Span{outer}, c0.Spans())
	assert.Equal(t, []*chunk.Span{inner, outer}, c1.Spans())
	assert.Equal(t, []*chunk.Span{inner, outer}, c2.Spans())
	assert.Equal(t, []*chunk.Span{outer}, c3.Spans())
}

func TestListSpanEmptyRange(t *testing.T) {
	t.Parallel()

	var l chunk.List
	l.Append("x")
	l.StartSpan(chunk.CostNormal)
	assert.Nil(t, l.EndSpan(), "a span covering no chunks is discarded")
	l.Finish()

	assert.Empty(t, l.At(0).Spans())
}

func TestListSpanSkipsHardened(t *testing.T) {
	t.Parallel()

	var l chunk.List
	l.StartSpan(chunk.CostNormal)
	c0 := l.Append("a")
	c1 := l.Append("b")
	c1.Harden()
	c2 := l.Append("c")
	span := l.EndSpan()
	l.Finish()

	require.NotNil(t, span)
	assert.Equal(t, []*chunk.Span{span}, c0.Spans())
	assert.Empty(t, c1.Spans(), "a forced break never rejoins a span")
	assert.Equal(t, []*chunk.Span{span}, c2.Spans())
}

func TestListContractViolations(t *testing.T) {
	t.Parallel()

	t.Run("unbalanced EndSpan", func(t *testing.T) {
		t.Parallel()

		var l chunk.List
		assert.Panics(t, func() { l.EndSpan() })
	})

	t.Run("Finish with open span", func(t *testing.T) {
		t.Parallel()

		var l chunk.List
		l.StartSpan(chunk.CostNormal)
		l.Append("x")
		assert.Panics(t, func() { l.Finish() })
	})

	t.Run("double Finish", func(t *testing.T) {
		t.Parallel()

		var l chunk.List
		l.Append("x")
		l.Finish()
		assert.Panics(t, func() { l.Finish() })
	})
}

func TestListFlattenNesting(t *testing.T) {
	t.Parallel()

	var l chunk.List
	a := l.Append("a")
	a.ApplySplit(soft("r"), 0, 0, chunk.SplitOptions{})
	b := l.Append("b")
	b.ApplySplit(soft("r"), 0, 4, chunk.SplitOptions{})
	c := l.Append("c")
	c.ApplySplit(soft("r"), 0, 9, chunk.SplitOptions{})

	// Nesting inside block content compacts on the same axis.
	child := chunk.New("d")
	child.ApplySplit(soft("r"), 0, 6, chunk.SplitOptions{})
	c.AppendBlock(child)

	l.Finish()

	var got []int
	for _, c := range l.All() {
		got = append(got, c.Nesting())
	}
	if diff := cmp.Diff([]int{0, 1, 3}, got); diff != "" {
		t.Errorf("unexpected nesting levels (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, child.Nesting())
}
