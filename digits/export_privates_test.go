// SPDX-License-Identifier: MIT

package digits

// White-box bridge for the three isolated permutation steps.
var (
	ExportedFindPivot     = findPivot
	ExportedPickSuccessor = pickSuccessor
	ExportedSortTail      = sortTail
)
