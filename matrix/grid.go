// SPDX-License-Identifier: MIT

// Package matrix - small helpers over [][]int grids.
//
// Purpose:
//   - Deep copy and cell-wise comparison used by callers that need to keep
//     the original grid around an in-place rotation.
//   - Stable text rendering for examples and test failure messages.

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Clone returns a deep copy of grid. Rows keep their individual lengths, so
// ragged input is copied as is. A nil grid yields nil.
//
// Complexity: O(total cells).
func Clone(grid [][]int) [][]int {
	if grid == nil {
		return nil
	}
	out := make([][]int, len(grid))
	for i, row := range grid {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// Equal reports whether a and b have the same shape and the same values in
// every cell.
//
// Complexity: O(total cells).
func Equal(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// Format renders grid one row per line, e.g. "[1, 2]\n[4, 3]\n".
//
// Complexity: O(total cells).
func Format(grid [][]int) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
