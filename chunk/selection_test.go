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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formatkit/linewrap/chunk"
)

func TestSelectionUnset(t *testing.T) {
	t.Parallel()

	c := chunk.New("hello")
	_, ok := c.SelectionStart()
	assert.False(t, ok)
	_, ok = c.SelectionEnd()
	assert.False(t, ok)
}

func TestSelectionAbsolute(t *testing.T) {
	t.Parallel()

	c := chunk.New("hello")
	c.StartSelection(0)
	c.EndSelection(3)

	start, ok := c.SelectionStart()
	require.True(t, ok)
	assert.Equal(t, 0, start, "offset zero is a valid anchor")

	end, ok := c.SelectionEnd()
	require.True(t, ok)
	assert.Equal(t, 3, end)
}

func TestSelectionFromEnd(t *testing.T) {
	t.Parallel()

	c := chunk.New("hello")
	c.StartSelectionFromEnd(2)

	start, ok := c.SelectionStart()
	require.True(t, ok)
	require.Equal(t, 3, start)

	// From-end anchors resolve at call time; later growth must not
	// re-anchor them.
	c.AppendText("world")
	start, ok = c.SelectionStart()
	require.True(t, ok)
	assert.Equal(t, 3, start)

	c.EndSelectionFromEnd(4)
	end, ok := c.SelectionEnd()
	require.True(t, ok)
	assert.Equal(t, 6, end)

	c.AppendText("!")
	end, ok = c.SelectionEnd()
	require.True(t, ok)
	assert.Equal(t, 6, end)
}

func TestSelectionOnComment(t *testing.T) {
	t.Parallel()

	comment := chunk.NewSourceComment("// keep", 0, true, false)
	comment.StartSelectionFromEnd(4)

	start, ok := comment.SelectionStart()
	require.True(t, ok)
	assert.Equal(t, 3, start)
}
