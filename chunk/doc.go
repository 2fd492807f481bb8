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

// Package chunk is the layout model of a line-wrapping source formatter.
//
// A [Chunk] is an atomic run of output text together with the decision of
// how the point after it may be rendered: not at all, as a space, as a
// newline, or as a blank line. A producer walks the source in document
// order building chunks one at a time in a [List], appending text and then
// binding exactly one split [Rule] per chunk. Several independent passes
// may visit the same break point; [Chunk.ApplySplit] reconciles their split
// information deterministically.
//
// A [Span] marks a contiguous run of chunks that should stay on one line
// to avoid paying its [Cost]. Spans are identity-unique: a downstream
// solver charges each span at most once, no matter how many chunks it
// crosses. The solver reads the finished chunk sequence plus span costs to
// pick which soft splits become newlines.
//
// Everything in this package is built synchronously by a single producer.
// Failures are producer bugs, reported by panicking; no operation returns
// an error.
package chunk
