// SPDX-License-Identifier: MIT

package basics

import (
	"fmt"
	"strings"
)

const (
	romanMin = 1
	romanMax = 3999
)

// romanTable lists numeral values in descending order, subtractive pairs included.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// ToRoman converts n to Roman numerals using subtractive notation.
//
// Errors:
//   - ErrOutOfRange if n is outside 1..3999.
//
// Example:
//
//	ToRoman(26) // "XXVI"
func ToRoman(n int) (string, error) {
	if n < romanMin || n > romanMax {
		return "", fmt.Errorf("ToRoman(%d): %w", n, ErrOutOfRange)
	}
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}

	return sb.String(), nil
}
