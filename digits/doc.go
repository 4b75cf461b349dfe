// SPDX-License-Identifier: MIT

// Package digits finds the nearest greater number made of the same digits.
//
// What:
//
//   - NearestGreater(n) returns the smallest integer strictly greater than n
//     whose decimal digits are a permutation of n's digits, or n itself when
//     the digits are already in non-increasing order (e.g. 321).
//   - Split / Join convert between an integer and its digits,
//     most-significant first.
//
// Algorithm (lexicographic next permutation on the digit sequence):
//
//  1. Pivot: scanning from the right, the first position p with
//     ds[p] < ds[p+1]. None means no greater permutation exists.
//  2. Successor: in the tail ds[p+1:], the smallest digit strictly greater
//     than ds[p]; swap it into position p.
//  3. Tail: sort ds[p+1:] ascending to get the minimal suffix.
//
// The three steps are separate functions so each can be tested on its own.
//
// Examples:
//
//	12345   -> 12354
//	123450  -> 123504
//	90822   -> 92028
//	321321  -> 322113
//	321     -> 321
//
// Complexity: O(d log d) for d digits.
//
// Errors:
//
//   - ErrNonPositive: n <= 0.
//   - ErrOverflow:    the permutation does not fit in int.
//   - ErrBadDigit:    Join received a value outside 0..9.
//   - ErrNoDigits:    Join received an empty slice.
package digits
