// SPDX-License-Identifier: MIT

// Package sorting orders numeric slices ascending in place.
//
// 🚀 What is inside?
//
//	An in-place partition-exchange sort (quicksort) with a Lomuto partition:
//	the last element of the active range is the pivot, elements strictly
//	less than the pivot move before a growing boundary, and the pivot is
//	then swapped onto that boundary.
//
// ✨ Key features:
//   - generic over every integer and float type (Number), and over any
//     constraints.Ordered type through QuickSort
//   - no allocation: the slice is reordered in place
//   - recursion goes into the smaller partition only, so stack depth stays
//     O(log n) even on already sorted input
//
// ⚙️ Usage:
//
//	xs := []int{-2, 9, 5, -3}
//	sorting.SortAscending(xs) // xs == [-3 -2 5 9]
//
// Performance:
//
//   - Time:   O(n log n) average, O(n²) worst case (sorted or constant input)
//   - Memory: O(1) extra, O(log n) stack
//
// The sort is not stable. NaN values never compare less than a pivot, so
// their final position is unspecified.
package sorting
