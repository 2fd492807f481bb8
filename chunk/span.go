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
	"sync/atomic"
)

// OpenSpan is a span whose starting chunk is known but whose end is not
// yet. It has no behavior; the producer carries it until the end of the
// range is reached and a [Span] can be minted.
type OpenSpan struct {
	// Start is the index of the first chunk the span will cover.
	Start int

	// Cost is the cost the finalized span will carry.
	Cost Cost
}

// Span marks a contiguous run of chunks that should stay on one line to
// avoid paying Cost. A span is immutable once minted.
//
// Spans are identity-unique, never value-equal: every chunk inside the
// range references the same *Span, and a solver charges the cost at most
// once per span even though two spans may well carry equal costs. The id
// is a monotonically increasing counter, so identity is deterministic and
// spans order stably in diagnostics.
type Span struct {
	id   uint32
	cost Cost
}

var spanIDs atomic.Uint32

// NewSpan mints a span with the given cost and a fresh identity.
func NewSpan(cost Cost) *Span {
	return &Span{id: spanIDs.Add(1), cost: cost}
}

// ID returns the span's unique identity.
func (s *Span) ID() uint32 { return s.id }

// Cost returns the cost a solver pays if the span is broken anywhere
// inside.
func (s *Span) Cost() Cost { return s.cost }

// String implements [fmt.Stringer].
func (s *Span) String() string {
	return fmt.Sprintf("span#%d(cost %d)", s.id, s.cost)
}
