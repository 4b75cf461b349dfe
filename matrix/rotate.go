// SPDX-License-Identifier: MIT

// Package matrix - in-place quarter-turn rotation of square grids.
//
// Purpose:
//   - Rotate an n×n grid by 90° without an auxiliary copy.
//   - Keep one explicit layer/offset loop shared by both directions.
//
// Loop bounds (edge-case policy):
//   - layer  < n/2            — the centre cell of an odd grid is never visited.
//   - offset < n-2*layer-1    — the last cell of each edge belongs to the next
//     4-cycle, so each 4-cycle is processed exactly once.
//
// Complexity quicksheet:
//   - RotateClockwise / RotateCounterClockwise: O(n²) time, O(1) extra space.
//   - Rotate: at most two quarter turns of work after normalisation mod 4
//     (a half turn is two clockwise passes; three turns is one counter pass).

package matrix

const (
	opRotateCW  = "RotateClockwise"
	opRotateCCW = "RotateCounterClockwise"
	opRotate    = "Rotate"

	quarterTurns = 4 // full revolution in quarter turns
)

// RotateClockwise rotates a square grid 90° clockwise in place.
//
// Implementation:
//   - Stage 1: ValidateSquare (no mutation happens on error).
//   - Stage 2: for every ring and every offset along its top edge, move the
//     4-tuple (top, right, bottom, left) one position clockwise.
//
// Errors:
//   - ErrNilGrid, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(1).
func RotateClockwise(grid [][]int) error {
	if err := ValidateSquare(grid); err != nil {
		return matrixErrorf(opRotateCW, err)
	}
	rotateCW(grid)

	return nil
}

// RotateCounterClockwise rotates a square grid 90° counter-clockwise in place.
// It is the inverse of RotateClockwise.
//
// Errors:
//   - ErrNilGrid, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(1).
func RotateCounterClockwise(grid [][]int) error {
	if err := ValidateSquare(grid); err != nil {
		return matrixErrorf(opRotateCCW, err)
	}
	rotateCCW(grid)

	return nil
}

// Rotate turns a square grid by turns quarter turns clockwise in place.
// Negative values rotate counter-clockwise. Turns are normalised mod 4, so
// Rotate(g, 4) and Rotate(g, 0) leave g unchanged (the grid is still
// validated).
//
// Errors:
//   - ErrNilGrid, ErrNonSquare.
func Rotate(grid [][]int, turns int) error {
	if err := ValidateSquare(grid); err != nil {
		return matrixErrorf(opRotate, err)
	}

	switch ((turns % quarterTurns) + quarterTurns) % quarterTurns {
	case 1:
		rotateCW(grid)
	case 2:
		rotateCW(grid)
		rotateCW(grid)
	case 3:
		rotateCCW(grid)
	}

	return nil
}

// rotateCW is the unchecked clockwise kernel; grid must be square.
func rotateCW(grid [][]int) {
	n := len(grid)
	var first, last, i, top int
	for layer := 0; layer < n/2; layer++ {
		first, last = layer, n-1-layer
		for offset := 0; offset < n-2*layer-1; offset++ {
			i = first + offset
			top = grid[first][i]
			grid[first][i] = grid[last-offset][first]          // left -> top
			grid[last-offset][first] = grid[last][last-offset] // bottom -> left
			grid[last][last-offset] = grid[i][last]            // right -> bottom
			grid[i][last] = top                                // top -> right
		}
	}
}

// rotateCCW is the unchecked counter-clockwise kernel; grid must be square.
func rotateCCW(grid [][]int) {
	n := len(grid)
	var first, last, i, top int
	for layer := 0; layer < n/2; layer++ {
		first, last = layer, n-1-layer
		for offset := 0; offset < n-2*layer-1; offset++ {
			i = first + offset
			top = grid[first][i]
			grid[first][i] = grid[i][last]                     // right -> top
			grid[i][last] = grid[last][last-offset]            // bottom -> right
			grid[last][last-offset] = grid[last-offset][first] // left -> bottom
			grid[last-offset][first] = top                     // top -> left
		}
	}
}
