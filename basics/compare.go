// SPDX-License-Identifier: MIT

package basics

import "golang.org/x/exp/constraints"

// IsPositive reports whether x >= 0. Zero counts as positive.
func IsPositive[T Number](x T) bool {
	return x >= 0
}

// Max3 returns the largest of a, b and c.
func Max3[T constraints.Ordered](a, b, c T) T {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}
