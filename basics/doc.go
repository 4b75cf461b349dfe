// SPDX-License-Identifier: MIT

// Package basics collects small single-pass checks and conversions:
// sign and maximum checks, chess and triangle geometry, Roman numerals,
// digit transliteration, palindromes, rune search, digit containment and
// balance-point search.
//
// Every function is pure and allocation-light. "Not found" results are
// reported as NotFound (-1); only ToRoman can fail.
package basics
