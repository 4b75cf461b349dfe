// SPDX-License-Identifier: MIT

package basics

import "strings"

// digitWords maps the runes understood by NumberToWords to their words.
var digitWords = map[rune]string{
	'0': "zero", '1': "one", '2': "two", '3': "three", '4': "four",
	'5': "five", '6': "six", '7': "seven", '8': "eight", '9': "nine",
	'-': "minus", '.': "point", ',': "point",
}

// NumberToWords spells out a number given as text, one word per symbol,
// separated by single spaces. Both '.' and ',' read as "point"; runes
// without a word are skipped.
//
// Example:
//
//	NumberToWords("-10,5") // "minus one zero point five"
func NumberToWords(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if w, ok := digitWords[r]; ok {
			words = append(words, w)
		}
	}

	return strings.Join(words, " ")
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// comparing runes.
func IsPalindrome(s string) bool {
	rs := []rune(s)
	for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
		if rs[l] != rs[r] {
			return false
		}
	}

	return true
}

// IndexOf returns the rune index (not byte offset) of the first occurrence
// of r in s, or NotFound.
func IndexOf(s string, r rune) int {
	i := 0
	for _, c := range s {
		if c == r {
			return i
		}
		i++
	}

	return NotFound
}
