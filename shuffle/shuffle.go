// SPDX-License-Identifier: MIT

package shuffle

import "fmt"

// Step applies the shuffle once: even-indexed runes in order, followed by
// odd-indexed runes in order.
//
// Example:
//
//	Step("qwerty") // "qetwry"
func Step(s string) string {
	src := []rune(s)
	dst := make([]rune, len(src))
	stepRunes(dst, src)

	return string(dst)
}

// stepRunes writes the shuffled order of src into dst; len(dst) == len(src).
func stepRunes(dst, src []rune) {
	half := (len(src) + 1) / 2 // number of even indices
	for i, r := range src {
		if i%2 == 0 {
			dst[i/2] = r
		} else {
			dst[half+i/2] = r
		}
	}
}

// Orbit returns the distinct strings reached by repeated Step, in step order,
// starting with s itself. Invalid UTF-8 in s is replaced by U+FFFD, so the
// first entry equals string([]rune(s)). The walk stops at the first value
// already seen, which for a permutation is always entry 0; len(Orbit(s)) is
// the cycle length.
//
// Complexity: O(L·m) time and memory.
func Orbit(s string) []string {
	var (
		seen  = map[string]int{} // value -> step index
		orbit []string
		cur   = []rune(s)
		next  = make([]rune, len(cur))
		key   = string(cur) // normalised, so invalid UTF-8 still cycles back
	)
	for {
		if first, ok := seen[key]; ok {
			return orbit[first:]
		}
		seen[key] = len(orbit)
		orbit = append(orbit, key)

		stepRunes(next, cur)
		cur, next = next, cur
		key = string(cur)
	}
}

// CycleLength returns the number of Step applications after which s first
// reappears. It is at least 1; strings shorter than three runes have length 1.
func CycleLength(s string) int {
	return len(Orbit(s))
}

// Chars returns s after n applications of Step. Only n mod CycleLength(s)
// steps are materialised, so very large n costs the same as a single cycle.
// A whole number of cycles returns s byte for byte, even when s is not
// valid UTF-8.
//
// Errors:
//   - ErrNegativeIterations if n < 0.
//
// Example:
//
//	Chars("qwerty", 3) // "qrwtey"
func Chars(s string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("Chars(n=%d): %w", n, ErrNegativeIterations)
	}
	if n == 0 {
		return s, nil
	}
	orbit := Orbit(s)
	if r := n % len(orbit); r != 0 {
		return orbit[r], nil
	}

	return s, nil
}
