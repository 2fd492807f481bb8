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

// Package interval provides an interval intersection map over integer
// endpoints.
//
// A [Map] holds a collection of closed intervals with associated values.
// Internally it is kept as a partition: a sorted sequence of pairwise
// disjoint segments, each carrying the values of every inserted interval
// that covers it. This makes "all values covering point p" a single tree
// lookup, and lets a caller sweep the whole collection segment by segment.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

// Endpoint is any integer type usable as an interval endpoint.
type Endpoint = constraints.Integer

// Segment is one element of the disjoint partition held by a [Map]: a
// closed range [Start, End] together with the values of every inserted
// interval covering it, in insertion order.
type Segment[K Endpoint, V any] struct {
	Start, End K
	Values     []V
}

// Contains reports whether the segment covers point.
func (s Segment[K, V]) Contains(point K) bool {
	return s.Start <= point && point <= s.End
}

// Map is an interval intersection map. A zero Map is empty and ready to
// use.
type Map[K Endpoint, V any] struct {
	// Keyed by segment end, so Seek(p) finds the first segment that
	// could contain p.
	tree btree.Map[K, *Segment[K, V]]

	// Scratch space reused across Insert calls.
	queue []*Segment[K, V]
}

// Get returns the segment covering point. The zero Segment is returned if
// no inserted interval covers it.
func (m *Map[K, V]) Get(point K) Segment[K, V] {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		return Segment[K, V]{}
	}
	return *it.Value()
}

// Segments returns an iterator over the disjoint partition, in order.
func (m *Map[K, V]) Segments() iter.Seq[Segment[K, V]] {
	return func(yield func(Segment[K, V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Len returns the number of segments in the partition.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Insert adds the closed interval [start, end] with an associated value,
// splitting existing segments as needed to keep the partition disjoint.
func (m *Map[K, V]) Insert(start, end K, value V) {
	if start > end {
		panic(fmt.Sprintf("linewrap/interval: start (%v) > end (%v)", start, end))
	}

	var prev *Segment[K, V]
	for seg := range m.overlapping(start, end) {
		if prev == nil && start < seg.Start {
			// Uncovered gap before the first overlapping segment.
			m.queue = append(m.queue, &Segment[K, V]{
				Start:  start,
				End:    seg.Start - 1,
				Values: []V{value},
			})
		}
		if prev != nil && prev.End+1 < seg.Start {
			// Uncovered gap between two overlapping segments.
			m.queue = append(m.queue, &Segment[K, V]{
				Start:  prev.End + 1,
				End:    seg.Start - 1,
				Values: []V{value},
			})
		}

		// The values slice may be shared with a sibling produced by an
		// earlier split, so appends must not write into shared capacity.
		orig := seg.Values

		if seg.Contains(end) && end < seg.End {
			// The new interval stops inside this segment. Split off the
			// covered left half; the right half keeps the old values.
			left := &Segment[K, V]{Start: seg.Start, End: end, Values: orig}
			seg.Start = end + 1
			m.queue = append(m.queue, left)
			seg = left
		}
		if seg.Contains(start) && seg.Start < start {
			// The new interval begins inside this segment. Split off the
			// uncovered left half.
			left := &Segment[K, V]{Start: seg.Start, End: start - 1, Values: orig}
			seg.Start = start
			m.queue = append(m.queue, left)
		}

		seg.Values = append(slices.Clip(orig), value)
		prev = seg
	}

	switch {
	case prev == nil:
		// Disjoint from everything already present.
		m.queue = append(m.queue, &Segment[K, V]{
			Start:  start,
			End:    end,
			Values: []V{value},
		})
	case prev.End < end:
		// Uncovered tail after the last overlapping segment.
		m.queue = append(m.queue, &Segment[K, V]{
			Start:  prev.End + 1,
			End:    end,
			Values: []V{value},
		})
	}

	for _, seg := range m.queue {
		m.tree.Set(seg.End, seg)
	}
	m.queue = m.queue[:0]
}

// overlapping returns an iterator over the segments intersecting
// [start, end], in order.
func (m *Map[K, V]) overlapping(start, end K) iter.Seq[*Segment[K, V]] {
	return func(yield func(*Segment[K, V]) bool) {
		it := m.tree.Iter()
		// Segments are keyed by end, so Seek(start) lands on the first
		// segment ending at or after start. From there, walk forward
		// until a segment begins past end.
		for more := it.Seek(start); more; more = it.Next() {
			if end < it.Value().Start || !yield(it.Value()) {
				return
			}
		}
	}
}
