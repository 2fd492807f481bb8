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

// Package arena provides a growable store whose elements never move.
//
// An [Arena] mimics the amortized growth of an ordinary slice, but instead of
// reallocating on growth it chains together doubling blocks. A full block is
// never reallocated, so pointers returned by [Arena.New] stay valid for the
// lifetime of the arena, and every element is addressable by a dense index.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
)

// blockMinShift is the log2 of the capacity of the first block.
const (
	blockMinShift = 4
	blockMin      = 1 << blockMinShift
)

// Arena is an append-only store of T with stable addresses.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(blocks[0]) == blockMin.
	// 2. cap(blocks[n]) == 2*cap(blocks[n-1]).
	// 3. Every block but the last is full.
	//
	// Together these make index lookup O(1) bit arithmetic.
	blocks [][]T
	count  int
}

// New appends value to the arena and returns a pointer to it.
//
// The returned pointer stays valid no matter how much the arena grows.
func (a *Arena[T]) New(value T) *T {
	last := len(a.blocks) - 1
	if last < 0 || len(a.blocks[last]) == cap(a.blocks[last]) {
		a.blocks = append(a.blocks, make([]T, 0, blockMin<<len(a.blocks)))
		last++
	}

	a.blocks[last] = append(a.blocks[last], value)
	a.count++
	return &a.blocks[last][len(a.blocks[last])-1]
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() int {
	return a.count
}

// At returns a pointer to the idx-th element, in allocation order.
func (a *Arena[T]) At(idx int) *T {
	if idx < 0 || idx >= a.count {
		panic(fmt.Sprintf("linewrap/arena: index out of range: %d (len %d)", idx, a.count))
	}

	block, offset := coordinates(idx)
	return &a.blocks[block][offset]
}

// All returns an iterator over all elements, in allocation order.
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		idx := 0
		for _, block := range a.blocks {
			for i := range block {
				if !yield(idx, &block[i]) {
					return
				}
				idx++
			}
		}
	}
}

// coordinates converts a dense index into a (block, offset) pair.
//
// Block capacities are blockMin<<n, so block n starts at blockMin*(2^n - 1).
// Adding blockMin to idx turns "which start precedes idx" into "position of
// the high bit", which is a single bit scan.
func coordinates(idx int) (int, int) {
	block := bits.Len(uint(idx)+blockMin) - blockMinShift - 1
	offset := idx - (blockMin<<block - blockMin)
	return block, offset
}
