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

import "fmt"

// Rule is the split policy bound to a chunk. Rules are owned by the
// producer; this package never inspects a rule's cost, only whether it is
// mandatory and how to display it.
type Rule interface {
	fmt.Stringer

	// Hard reports whether this rule always renders as a newline.
	Hard() bool

	// Outer returns the rules this rule is constrained by, for
	// diagnostic display only.
	Outer() []Rule
}

// hardSplit is the rule [Chunk.Harden] binds. All hard rules render the
// same way, so one value suffices.
type hardSplit struct{}

func (hardSplit) Hard() bool     { return true }
func (hardSplit) Outer() []Rule  { return nil }
func (hardSplit) String() string { return "hard" }

// HardSplit returns the canonical mandatory-split rule.
func HardSplit() Rule { return hardSplit{} }
