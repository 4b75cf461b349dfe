// SPDX-License-Identifier: MIT

// Package lvloop is a small toolbox of pure, deterministic algorithms over
// integers, strings, numeric slices and square grids.
//
// 🚀 What is inside?
//
//	A set of independent packages, each one callable on its own:
//		• Spiral grids and in-place quarter-turn rotation
//		• In-place ascending quicksort for any numeric slice
//		• Even/odd character shuffle with cycle-length shortcut
//		• Nearest greater number made of the same digits
//		• Everyday checks: Roman numerals, palindromes, queen attacks, …
//
// ✨ Why lvloop?
//
//   - No shared state: every call is independent and reentrant
//   - Explicit errors: invalid input returns a sentinel error, never a panic
//   - Pure Go with generics over golang.org/x/exp/constraints
//
// Packages:
//
//	matrix/  — Spiral, RotateClockwise, RotateCounterClockwise, Rotate
//	sorting/ — SortAscending, QuickSort, IsSorted
//	shuffle/ — Step, Orbit, CycleLength, Chars
//	digits/  — NearestGreater, Split, Join
//	basics/  — IsPositive, Max3, CanQueenCaptureKing, IsIsoscelesTriangle,
//	           ToRoman, NumberToWords, IsPalindrome, IndexOf,
//	           ContainsDigit, BalanceIndex
//
// Quick ASCII example (matrix.Spiral(3)):
//
//	1 → 2 → 3
//	        ↓
//	8 → 9   4
//	↑       ↓
//	7 ← 6 ← 5
//
//	go get github.com/katalvlaran/lvloop
package lvloop
