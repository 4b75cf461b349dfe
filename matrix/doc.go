// SPDX-License-Identifier: MIT

// Package matrix builds and transforms square integer grids.
//
// The matrix package provides:
//
//   - Spiral: an n×n grid filled with consecutive integers along a clockwise
//     (or counter-clockwise) spiral starting in the top-left corner.
//   - RotateClockwise / RotateCounterClockwise / Rotate: in-place quarter
//     turns using four-way cyclic swaps per ring, O(1) extra space.
//   - ValidateSquare, Clone, Equal and Format helpers.
//
// Grids are plain [][]int values, row-major: grid[row][col].
//
//	Spiral(4):
//	  [ 1,  2,  3, 4]
//	  [12, 13, 14, 5]
//	  [11, 16, 15, 6]
//	  [10,  9,  8, 7]
//
// Rotation mutates its argument; do not rotate the same grid from two
// goroutines at once.
//
// See the examples in this package for usage patterns.
package matrix
