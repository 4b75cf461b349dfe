// SPDX-License-Identifier: MIT

package digits

import (
	"math"
	"strconv"
)

const (
	base = 10

	opJoin = "Join"
)

// Split returns the decimal digits of n, most-significant first.
// Split(0) is [0]. The sign of a negative n is ignored.
func Split(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var rev []int
	for n != 0 {
		d := n % base
		if d < 0 {
			d = -d
		}
		rev = append(rev, d)
		n /= base
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev
}

// Join assembles digits, most-significant first, into an int.
// Leading zeros are allowed and simply vanish.
//
// Errors:
//   - ErrNoDigits if ds is empty.
//   - ErrBadDigit if any value is outside 0..9.
//   - ErrOverflow if the value exceeds math.MaxInt.
func Join(ds []int) (int, error) {
	if len(ds) == 0 {
		return 0, digitsErrorf(opJoin, ErrNoDigits)
	}
	v := 0
	for i, d := range ds {
		if d < 0 || d >= base {
			return 0, digitsErrorf(opJoin+"[pos "+strconv.Itoa(i)+"]", ErrBadDigit)
		}
		if v > (math.MaxInt-d)/base {
			return 0, digitsErrorf(opJoin, ErrOverflow)
		}
		v = v*base + d
	}

	return v, nil
}
