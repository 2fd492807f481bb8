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

// Cost is the relative penalty a solver pays for taking a split. The
// values below are relational, not absolute: [CostNormal] is the unique
// minimum positive cost, so some splitting is always infinitesimally
// preferred over none when nothing else distinguishes two layouts, and
// [CostOverflowChar] dominates any achievable sum of structural costs, so
// a single character past the page width is never preferred over any
// number of structural splits.
type Cost int

const (
	// CostNormal is the cost of a plain soft split.
	CostNormal Cost = 1

	// CostAssignment is the cost of splitting after an assignment
	// operator.
	CostAssignment Cost = 2

	// CostFirstBlockArgument is the cost of splitting before the first
	// block-bodied argument of a call.
	CostFirstBlockArgument Cost = 2

	// CostPositionalArguments is the cost of splitting a run of
	// positional arguments onto separate lines.
	CostPositionalArguments Cost = 2

	// CostSingleElementList is the cost of splitting a collection
	// literal that holds a single element.
	CostSingleElementList Cost = 2

	// CostSplitBlocks is the cost of splitting between adjacent block
	// arguments.
	CostSplitBlocks Cost = 2

	// CostOverflowChar is the cost of one character running past the
	// page width.
	CostOverflowChar Cost = 10000
)
