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

package chunk

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"

	"github.com/formatkit/linewrap/internal/arena"
	"github.com/formatkit/linewrap/internal/interval"
)

// List holds the chunks of one document in production order, along with
// the span bookkeeping a producer drives while walking the source.
//
// Chunks live in an arena, so a *Chunk handed out by [List.Append] stays
// valid as the list grows, and spans can address chunk ranges by dense
// index.
//
// A zero List is empty and ready to use.
type List struct {
	chunks arena.Arena[Chunk]

	// Spans open in producer order; a stack, since span ranges nest the
	// way the source's grammar does.
	open []OpenSpan

	// Chunk ranges of every finalized span, as a disjoint partition.
	// Baked onto the chunks by [List.Finish].
	ranges interval.Map[int, *Span]

	finished bool
}

// Append creates the next chunk in document order, holding the given
// initial text, and returns it.
func (l *List) Append(text string) *Chunk {
	return l.chunks.New(Chunk{text: text, indent: -1})
}

// Len returns the number of chunks appended so far.
func (l *List) Len() int { return l.chunks.Len() }

// At returns the i-th chunk in document order.
func (l *List) At(i int) *Chunk { return l.chunks.At(i) }

// All returns an iterator over the chunks in document order.
func (l *List) All() iter.Seq2[int, *Chunk] { return l.chunks.All() }

// StartSpan opens a span beginning at the next chunk to be appended.
func (l *List) StartSpan(cost Cost) {
	l.open = append(l.open, OpenSpan{Start: l.Len(), Cost: cost})
}

// EndSpan closes the most recently opened span, covering every chunk
// appended since the matching [List.StartSpan]. If no chunk was appended
// in between, the span is discarded and EndSpan returns nil. Closing with
// no span open is a producer bug and panics.
func (l *List) EndSpan() *Span {
	if len(l.open) == 0 {
		panic("linewrap/chunk: EndSpan with no open span")
	}

	o := l.open[len(l.open)-1]
	l.open = l.open[:len(l.open)-1]
	if o.Start >= l.Len() {
		return nil
	}

	span := NewSpan(o.Cost)
	l.ranges.Insert(o.Start, l.Len()-1, span)
	return span
}

// Finish seals the list once the producer has walked the whole document.
// It bakes the recorded span ranges onto the chunks they cross and
// compacts the document's nesting levels into a dense numbering. Spans
// left open, or a second Finish, are producer bugs and panic.
func (l *List) Finish() {
	if l.finished {
		panic("linewrap/chunk: Finish called twice")
	}
	if len(l.open) > 0 {
		panic(fmt.Sprintf("linewrap/chunk: Finish with %d span(s) still open", len(l.open)))
	}
	l.finished = true

	l.bakeSpans()
	l.flattenNesting()
}

// bakeSpans populates each chunk's span set from the range partition.
// Every chunk index falls in exactly one segment, and that segment's
// values are exactly the spans covering it.
func (l *List) bakeSpans() {
	for seg := range l.ranges.Segments() {
		for i := seg.Start; i <= seg.End; i++ {
			c := l.At(i)
			if c.hardened {
				// A forced break stays out of span accounting.
				continue
			}
			c.spans = append(c.spans, seg.Values...)
		}
	}
}

// flattenNesting compacts the sparse nesting numbering the producer used
// into the dense 0..n-1 range a solver expects, across the whole chunk
// tree including block content.
func (l *List) flattenNesting() {
	var levels btree.Set[int]
	l.walk(func(c *Chunk) {
		levels.Insert(c.nesting)
	})

	remap := make(map[int]int, levels.Len())
	levels.Scan(func(level int) bool {
		remap[level] = len(remap)
		return true
	})

	l.walk(func(c *Chunk) {
		c.FlattenNesting(remap)
	})
}

// walk visits every chunk in the list, including nested block content,
// with an explicit stack since block depth is unbounded.
func (l *List) walk(visit func(*Chunk)) {
	var stack []*Chunk
	for _, c := range l.All() {
		stack = append(stack, c)
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			visit(c)
			stack = append(stack, c.block...)
		}
	}
}
