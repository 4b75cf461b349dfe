// SPDX-License-Identifier: MIT

package digits

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositive indicates the input number is zero or negative.
	ErrNonPositive = errors.New("digits: number must be > 0")

	// ErrOverflow indicates the resulting number does not fit in int.
	ErrOverflow = errors.New("digits: result overflows int")

	// ErrBadDigit indicates a digit value outside 0..9.
	ErrBadDigit = errors.New("digits: digit out of range 0..9")

	// ErrNoDigits indicates an empty digit sequence.
	ErrNoDigits = errors.New("digits: empty digit sequence")
)

// digitsErrorf wraps an underlying error with the given tag.
func digitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
