// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// SortAscending sorts xs in non-decreasing order in place and returns xs for
// chaining. A nil or single-element slice is returned unchanged.
//
// Example:
//
//	SortAscending([]float64{2, 9, 5, 9}) // [2 5 9 9]
func SortAscending[T Number](xs []T) []T {
	QuickSort(xs)

	return xs
}

// QuickSort sorts xs in place using partition-exchange with a last-element
// pivot. The sort is not stable.
//
// Algorithm Outline:
//  1. Active range [lo, hi]; stop when lo >= hi.
//  2. p = partition(xs, lo, hi).
//  3. Recurse into the smaller of [lo, p-1] and [p+1, hi]; continue the loop
//     on the larger one.
//
// Complexity:
//
//	Time   = O(n log n) average, O(n²) worst
//	Memory = O(log n) stack
func QuickSort[T constraints.Ordered](xs []T) {
	quickSort(xs, 0, len(xs)-1)
}

// quickSort sorts xs[lo..hi] inclusive.
func quickSort[T constraints.Ordered](xs []T, lo, hi int) {
	for lo < hi {
		p := partition(xs, lo, hi)
		if p-lo < hi-p {
			quickSort(xs, lo, p-1)
			lo = p + 1
		} else {
			quickSort(xs, p+1, hi)
			hi = p - 1
		}
	}
}

// partition reorders xs[lo..hi] around the pivot xs[hi] and returns the
// pivot's final index b: xs[lo..b-1] < pivot and xs[b+1..hi] >= pivot.
func partition[T constraints.Ordered](xs []T, lo, hi int) int {
	pivot := xs[hi]
	b := lo // boundary: first index not known to be < pivot
	for i := lo; i < hi; i++ {
		if xs[i] < pivot {
			xs[b], xs[i] = xs[i], xs[b]
			b++
		}
	}
	xs[b], xs[hi] = xs[hi], xs[b]

	return b
}

// IsSorted reports whether xs is in non-decreasing order.
func IsSorted[T constraints.Ordered](xs []T) bool {
	for i := len(xs) - 1; i > 0; i-- {
		if xs[i] < xs[i-1] {
			return false
		}
	}

	return true
}
