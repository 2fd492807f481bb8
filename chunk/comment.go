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

// SourceComment is one comment occurrence lifted out of the original
// source, with the placement hints the formatter needs to re-emit it.
// Everything but the embedded selection tracking is immutable.
type SourceComment struct {
	selection

	text        string
	linesBefore int
	isLine      bool
	flushLeft   bool
}

// NewSourceComment records a comment occurrence.
//
// text includes the comment delimiters. linesBefore is the number of blank
// source lines immediately preceding the comment, zero for a comment
// trailing code on the same line. isLine distinguishes line comments from
// block comments. flushLeft marks a comment that began at column one in
// the original source; such comments are emitted verbatim rather than
// re-indented, so intentionally unindented commented-out code is not
// corrupted.
func NewSourceComment(text string, linesBefore int, isLine, flushLeft bool) *SourceComment {
	return &SourceComment{
		text:        text,
		linesBefore: linesBefore,
		isLine:      isLine,
		flushLeft:   flushLeft,
	}
}

// Text returns the comment text, including delimiters.
func (c *SourceComment) Text() string { return c.text }

// LinesBefore returns the number of blank source lines immediately before
// the comment.
func (c *SourceComment) LinesBefore() int { return c.linesBefore }

// IsLine reports whether this is a line comment rather than a block
// comment.
func (c *SourceComment) IsLine() bool { return c.isLine }

// FlushLeft reports whether the comment began at column one in the
// original source.
func (c *SourceComment) FlushLeft() bool { return c.flushLeft }

// StartSelection records that the selection starts offset code units into
// this comment's text.
func (c *SourceComment) StartSelection(offset int) { c.setStart(offset) }

// EndSelection records that the selection ends offset code units into
// this comment's text.
func (c *SourceComment) EndSelection(offset int) { c.setEnd(offset) }

// StartSelectionFromEnd records that the selection starts k code units
// before the end of this comment's text.
func (c *SourceComment) StartSelectionFromEnd(k int) { c.setStart(len(c.text) - k) }

// EndSelectionFromEnd records that the selection ends k code units before
// the end of this comment's text.
func (c *SourceComment) EndSelectionFromEnd(k int) { c.setEnd(len(c.text) - k) }

// SelectionStart returns the recorded selection start, if any.
func (c *SourceComment) SelectionStart() (int, bool) { return c.selectionStart() }

// SelectionEnd returns the recorded selection end, if any.
func (c *SourceComment) SelectionEnd() (int, bool) { return c.selectionEnd() }
