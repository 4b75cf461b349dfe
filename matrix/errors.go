// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public operation returns these sentinels (possibly wrapped
// with a call-site tag) and tests match them via errors.Is. No operation
// panics on user-triggered error conditions; option constructors panic on
// nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// matrixErrorf(tag, ErrX) at the detection site; callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// size -> nil/empty grid -> shape (ragged/non-square).

var (
	// ErrBadSize is returned when a requested spiral size is not positive.
	ErrBadSize = errors.New("matrix: size must be > 0")

	// ErrNilGrid indicates a nil or zero-row grid was passed where a square
	// grid is required.
	ErrNilGrid = errors.New("matrix: grid is nil or empty")

	// ErrNonSquare signals that a square grid was required but some row
	// length differs from the number of rows.
	ErrNonSquare = errors.New("matrix: grid is not square")

	// ErrValueOverflow is returned when the values written by Spiral would not
	// fit in int for the requested size and start value.
	ErrValueOverflow = errors.New("matrix: spiral values overflow int")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
