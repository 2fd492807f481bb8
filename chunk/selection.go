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

// selection records where an external cursor or selection boundary falls
// within an owning text run, so the position survives reformatting.
//
// Offsets are stored off by one so the zero value means "unset", the same
// convention the chunk arena uses for nil pointers. Both [Chunk] and
// [SourceComment] embed a selection; they share the operations, not a
// type hierarchy.
type selection struct {
	start, end uint32
}

func (s *selection) setStart(offset int) { s.start = uint32(offset) + 1 }
func (s *selection) setEnd(offset int)   { s.end = uint32(offset) + 1 }

func (s *selection) selectionStart() (int, bool) {
	return int(s.start) - 1, s.start != 0
}

func (s *selection) selectionEnd() (int, bool) {
	return int(s.end) - 1, s.end != 0
}
