// SPDX-License-Identifier: MIT

package basics

// Position is a square on a chessboard, 1-based file X and rank Y.
type Position struct {
	X, Y int
}

// CanQueenCaptureKing reports whether a queen on queen attacks king, i.e.
// both squares share a file, a rank or a diagonal. Blocking pieces are not
// modelled.
func CanQueenCaptureKing(queen, king Position) bool {
	if queen.X == king.X || queen.Y == king.Y {
		return true
	}

	return abs(king.X-queen.X) == abs(king.Y-queen.Y)
}

// IsIsoscelesTriangle reports whether a, b and c are the sides of a
// non-degenerate triangle with at least two equal sides.
func IsIsoscelesTriangle(a, b, c int) bool {
	if a <= 0 || b <= 0 || c <= 0 {
		return false
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return false
	}

	return a == b || a == c || b == c
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
