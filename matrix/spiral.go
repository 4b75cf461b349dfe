// SPDX-License-Identifier: MIT

// Package matrix - Spiral grid builder.
//
// Purpose:
//   - Fill an n×n grid with consecutive integers along a spiral walk.
//   - Shrink the traversal boundary inward after every completed edge.
//
// Complexity quicksheet:
//   - Spiral: O(n²) time, O(n²) space (the result itself).

package matrix

import "math"

const opSpiral = "Spiral"

// Spiral returns a size×size grid filled with consecutive integers along a
// spiral that starts in the top-left corner.
//
// Implementation:
//   - Stage 1: validate size and the value range; resolve options.
//   - Stage 2: allocate rows on a single backing buffer.
//   - Stage 3: walk the four boundary edges of the current ring
//     (top left→right, right top→bottom, bottom right→left,
//     left bottom→top), shrinking the boundary after each edge until
//     the boundary collapses.
//   - Stage 4: CounterClockwise writes every value at the mirrored
//     coordinate (col,row), which yields the transpose of the clockwise walk.
//
// Behavior highlights:
//   - Even and odd sizes are handled by re-checking the boundary before the
//     bottom and left edges, so a collapsed single row or column is not
//     written twice.
//   - Every cell is assigned exactly once.
//
// Errors:
//   - ErrBadSize if size <= 0.
//   - ErrValueOverflow if size² or start+size²-1 does not fit in int.
//
// Memory: the result holds size² ints in one buffer. Spiral only rejects
// sizes whose cell count overflows int; a size that passes that check but
// exceeds available memory makes the allocation panic, so callers bound
// size themselves.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func Spiral(size int, opts ...Option) ([][]int, error) {
	// Stage 1: validate
	if err := ValidateSize(size); err != nil {
		return nil, matrixErrorf(opSpiral, err)
	}
	o := gatherOptions(opts...)
	if size > math.MaxInt/size {
		return nil, matrixErrorf(opSpiral, ErrValueOverflow)
	}
	cells := size * size
	if o.start > 0 && o.start-1 > math.MaxInt-cells {
		return nil, matrixErrorf(opSpiral, ErrValueOverflow)
	}

	// Stage 2: allocate
	buf := make([]int, cells)
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = buf[i*size : (i+1)*size : (i+1)*size]
	}

	put := func(r, c, v int) { grid[r][c] = v }
	if o.direction == CounterClockwise {
		put = func(r, c, v int) { grid[c][r] = v }
	}

	// Stage 3: walk rings
	var (
		top, bottom = 0, size - 1
		left, right = 0, size - 1
		v           = o.start
		i           int
	)
	for top <= bottom && left <= right {
		for i = left; i <= right; i++ {
			put(top, i, v)
			v++
		}
		top++

		for i = top; i <= bottom; i++ {
			put(i, right, v)
			v++
		}
		right--

		if top <= bottom {
			for i = right; i >= left; i-- {
				put(bottom, i, v)
				v++
			}
			bottom--
		}

		if left <= right {
			for i = bottom; i >= top; i-- {
				put(i, left, v)
				v++
			}
			left++
		}
	}

	return grid, nil
}
