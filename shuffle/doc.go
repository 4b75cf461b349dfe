// SPDX-License-Identifier: MIT

// Package shuffle applies the even/odd character shuffle many times cheaply.
//
// One Step moves every character at an odd index (0-based) behind all the
// characters at even indices, keeping relative order inside both groups:
//
//	"012345" -> "024135" -> "043215" -> "031425" -> "012345"
//
// Repeating Step on a fixed string is a permutation of a finite set, so the
// original string comes back after some cycle length L. Chars detects L by
// walking the orbit once (a map from string value to step index) and then
// answers any iteration count n with the orbit entry n mod L, so n may be far
// larger than L.
//
// Characters are Unicode code points: multi-byte UTF-8 sequences are moved
// as a unit. Invalid UTF-8 bytes are treated as U+FFFD by the rune
// conversion.
//
// Complexity:
//
//   - Step:        O(m) for a string of m runes.
//   - CycleLength: O(L·m) time and memory.
//   - Chars:       O(L·m), independent of n.
package shuffle
