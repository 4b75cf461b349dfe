// SPDX-License-Identifier: MIT

package sorting

// ExportedPartition exposes the Lomuto partition step to sorting_test.
func ExportedPartition(xs []int, lo, hi int) int {
	return partition(xs, lo, hi)
}
