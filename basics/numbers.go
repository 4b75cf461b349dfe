// SPDX-License-Identifier: MIT

package basics

import "github.com/katalvlaran/lvloop/digits"

// ContainsDigit reports whether the decimal representation of n contains
// digit. The sign of n is ignored; a digit outside 0..9 never matches.
func ContainsDigit(n, digit int) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	for _, d := range digits.Split(n) {
		if d == digit {
			return true
		}
	}

	return false
}

// BalanceIndex returns the first index i such that the sum of xs[:i] equals
// the sum of xs[i+1:], or NotFound. Only interior positions qualify: both
// sides must hold at least one element.
//
// Example:
//
//	BalanceIndex([]int{1, 2, 5, 3, 0}) // 2, since 1+2 == 3+0
//
// Complexity: O(n) time, O(1) space.
func BalanceIndex[T Number](xs []T) int {
	var total T
	for _, x := range xs {
		total += x
	}

	var left T
	for i := 0; i < len(xs); i++ {
		if i > 0 && i < len(xs)-1 && left == total-left-xs[i] {
			return i
		}
		left += xs[i]
	}

	return NotFound
}
