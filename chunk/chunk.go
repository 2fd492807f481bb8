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
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Chunk is an atomic run of output text plus the split decision that
// terminates it.
//
// A chunk accumulates text while no rule is bound. Binding a rule with
// [Chunk.ApplySplit] freezes the text; the layout metadata may still be
// revised by later ApplySplit calls from other passes over the same break
// point.
type Chunk struct {
	selection

	text string
	rule Rule

	// indent is the block indentation of the line after this chunk's
	// split; -1 until a split is applied. nesting is the expression
	// nesting depth, an independent axis.
	indent  int
	nesting int

	flushLeft        bool
	spaceWhenUnsplit bool
	double           bool

	// hardened marks a chunk forced to break by [Chunk.Harden]. Such a
	// chunk never rejoins a span.
	hardened bool

	block []*Chunk
	spans []*Span

	divide    bool
	divideSet bool
}

// SplitOptions carries the per-call layout flags of [Chunk.ApplySplit].
type SplitOptions struct {
	// FlushLeft forces the line after the split to column zero,
	// ignoring indentation and nesting. Used for verbatim content such
	// as multi-line strings and column-one comments.
	FlushLeft bool

	// SpaceWhenUnsplit renders one space after the chunk if its soft
	// split is not taken.
	SpaceWhenUnsplit bool

	// Double renders the split as a blank line if taken.
	Double bool
}

// New creates a chunk holding the given initial text.
//
// Chunks in document order are normally created through [List.Append];
// New exists for nested block content attached via [Chunk.AppendBlock].
func New(text string) *Chunk {
	return &Chunk{text: text, indent: -1}
}

// Text returns the chunk's literal output text.
func (c *Chunk) Text() string { return c.text }

// Indent returns the block indentation level after this chunk's split, or
// -1 if no split has been applied.
func (c *Chunk) Indent() int { return c.indent }

// Nesting returns the expression nesting level after this chunk's split.
func (c *Chunk) Nesting() int { return c.nesting }

// Rule returns the bound split rule, or nil while the chunk is unbound.
func (c *Chunk) Rule() Rule { return c.rule }

// HardSplit reports whether the bound rule always renders as a newline.
func (c *Chunk) HardSplit() bool { return c.rule != nil && c.rule.Hard() }

// FlushLeft reports whether the line after this chunk's split is forced
// to column zero.
func (c *Chunk) FlushLeft() bool { return c.flushLeft }

// SpaceWhenUnsplit reports whether one space is rendered after the chunk
// when its split is not taken.
func (c *Chunk) SpaceWhenUnsplit() bool { return c.spaceWhenUnsplit }

// Double reports whether the split renders as a blank line if taken.
func (c *Chunk) Double() bool { return c.double }

// Block returns the chunk's nested block content, in order.
func (c *Chunk) Block() []*Chunk { return c.block }

// Spans returns the spans crossing this chunk.
func (c *Chunk) Spans() []*Span { return c.spans }

// CanAddText reports whether the chunk still accepts text, which it does
// until a split rule is bound.
func (c *Chunk) CanAddText() bool { return c.rule == nil }

// AppendText extends the chunk's text. Text is frozen once a rule is
// bound; appending after that point is a producer bug and panics.
func (c *Chunk) AppendText(text string) {
	if !c.CanAddText() {
		panic("linewrap/chunk: AppendText on a chunk whose split is already bound")
	}
	c.text += text
}

// ApplySplit binds or merges split information onto the chunk.
//
// Independent passes may visit the same conceptual break point, for
// example a structural pass and a whitespace-preservation pass. Their
// split information merges as follows:
//
//   - A hard rule, bound or incoming, wins: a bound hard rule is never
//     demoted, and an incoming hard rule replaces a bound soft one.
//   - Otherwise the first rule to arrive stays bound; a second soft rule
//     leaves the bound pointer unchanged.
//   - indent, nesting, FlushLeft, and SpaceWhenUnsplit always take this
//     call's values: latest caller wins for layout metadata.
//   - Double only ever turns on: once a pass asks for a blank line, it
//     keeps it.
func (c *Chunk) ApplySplit(rule Rule, indent, nesting int, opts SplitOptions) {
	switch {
	case c.HardSplit():
		// Never demoted.
	case rule != nil && rule.Hard():
		c.rule = rule
	case c.rule == nil:
		c.rule = rule
	}

	c.indent = indent
	c.nesting = nesting
	c.flushLeft = opts.FlushLeft
	c.spaceWhenUnsplit = opts.SpaceWhenUnsplit
	c.double = c.double || opts.Double
}

// Harden unconditionally rebinds the chunk to the hard-split rule and
// clears its span membership: once the break is forced, tracking span
// costs across this chunk is moot, permanently.
func (c *Chunk) Harden() {
	c.rule = hardSplit{}
	c.hardened = true
	c.spans = nil
}

// MarkDivide records whether a solver may treat everything after this
// chunk as an independently solvable segment. It may be called exactly
// once; a second call panics.
func (c *Chunk) MarkDivide(divide bool) {
	if c.divideSet {
		panic("linewrap/chunk: MarkDivide called twice on the same chunk")
	}
	c.divide = divide
	c.divideSet = true
}

// CanDivide reports the flag recorded by [Chunk.MarkDivide]. Reading it
// before it is set panics.
func (c *Chunk) CanDivide() bool {
	if !c.divideSet {
		panic("linewrap/chunk: CanDivide read before MarkDivide")
	}
	return c.divide
}

// AppendBlock attaches a chunk of nested block content, such as one line
// of a lambda body. Ownership is exclusive and strictly tree-shaped.
func (c *Chunk) AppendBlock(child *Chunk) {
	c.block = append(c.block, child)
}

// AppendSpan records that a span crosses this chunk.
func (c *Chunk) AppendSpan(span *Span) {
	c.spans = append(c.spans, span)
}

// FlattenNesting replaces the chunk's nesting level by looking it up in a
// remap table. It runs once per chunk, after every nesting level in the
// document is known, to compact a sparse numbering into the dense range a
// solver expects. A level missing from the table is a producer bug.
func (c *Chunk) FlattenNesting(remap map[int]int) {
	level, ok := remap[c.nesting]
	if !ok {
		panic(fmt.Sprintf("linewrap/chunk: nesting level %d missing from remap table", c.nesting))
	}
	c.nesting = level
}

// Length returns the display width of the chunk's text, plus one for the
// space rendered when a soft split is not taken.
func (c *Chunk) Length() int {
	length := uniseg.StringWidth(c.text)
	if c.spaceWhenUnsplit {
		length++
	}
	return length
}

// UnsplitBlockLength returns the total length of the chunk's block
// content if it were all rendered on one line, excluding the chunk's own
// length. A solver uses it to cheaply rule out keeping an entire block on
// one line before attempting a finer-grained search.
//
// Block depth is not bounded by anything this package controls, so the
// walk keeps its own stack rather than recursing.
func (c *Chunk) UnsplitBlockLength() int {
	var length int
	stack := slices.Clone(c.block)
	for len(stack) > 0 {
		child := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		length += child.Length()
		stack = append(stack, child.block...)
	}
	return length
}

// StartSelection records that the selection starts offset code units into
// this chunk's text.
func (c *Chunk) StartSelection(offset int) { c.setStart(offset) }

// EndSelection records that the selection ends offset code units into
// this chunk's text.
func (c *Chunk) EndSelection(offset int) { c.setEnd(offset) }

// StartSelectionFromEnd records that the selection starts k code units
// before the current end of this chunk's text. The offset is resolved
// immediately; growing the text afterwards does not move it, so callers
// must sequence this after all text that precedes the anchor.
func (c *Chunk) StartSelectionFromEnd(k int) { c.setStart(len(c.text) - k) }

// EndSelectionFromEnd records that the selection ends k code units before
// the current end of this chunk's text, resolved immediately as with
// [Chunk.StartSelectionFromEnd].
func (c *Chunk) EndSelectionFromEnd(k int) { c.setEnd(len(c.text) - k) }

// SelectionStart returns the recorded selection start, if any.
func (c *Chunk) SelectionStart() (int, bool) { return c.selectionStart() }

// SelectionEnd returns the recorded selection end, if any.
func (c *Chunk) SelectionEnd() (int, bool) { return c.selectionEnd() }

// String renders the chunk for debugging: the text, then each set field,
// then the bound rule. The exact shape is not a compatibility contract.
func (c *Chunk) String() string {
	var parts []string
	if c.text != "" {
		parts = append(parts, c.text)
	}
	if c.indent >= 0 {
		parts = append(parts, fmt.Sprintf("indent:%d", c.indent))
	}
	if c.nesting != 0 {
		parts = append(parts, fmt.Sprintf("nesting:%d", c.nesting))
	}
	if c.spaceWhenUnsplit {
		parts = append(parts, "space")
	}
	if c.double {
		parts = append(parts, "double")
	}
	if c.flushLeft {
		parts = append(parts, "flush")
	}

	switch {
	case c.rule == nil:
		parts = append(parts, "(no split)")
	case c.rule.Hard():
		parts = append(parts, "hard")
	default:
		rule := c.rule.String()
		if outer := c.rule.Outer(); len(outer) > 0 {
			names := make([]string, len(outer))
			for i, r := range outer {
				names[i] = r.String()
			}
			rule += " -> " + strings.Join(names, " ")
		}
		parts = append(parts, rule)
	}

	return strings.Join(parts, " ")
}
