// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for grid validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own tag on top.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateSquare runs O(n) over row headers only.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateSize ensures a requested side length is positive.
//
// Errors: ErrBadSize.
// Complexity: O(1).
func ValidateSize(size int) error {
	if size <= 0 {
		return validatorErrorf("ValidateSize", ErrBadSize)
	}

	return nil
}

// ValidateSquare checks that grid is non-empty and that every row has
// exactly len(grid) cells.
//
// Errors: ErrNilGrid if grid has no rows, ErrNonSquare otherwise.
// Complexity: O(n).
func ValidateSquare(grid [][]int) error {
	n := len(grid)
	if n == 0 {
		return validatorErrorf("ValidateSquare", ErrNilGrid)
	}
	for _, row := range grid {
		if len(row) != n {
			return validatorErrorf("ValidateSquare", ErrNonSquare)
		}
	}

	return nil
}
