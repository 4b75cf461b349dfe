// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the spiral builder.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvloop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpiral_BadSize ensures non-positive sizes are rejected with ErrBadSize.
func TestSpiral_BadSize(t *testing.T) {
	for _, size := range []int{0, -1, math.MinInt} {
		g, err := matrix.Spiral(size)
		require.ErrorIs(t, err, matrix.ErrBadSize, "size=%d", size)
		assert.Nil(t, g)
	}
}

// TestSpiral_Overflow ensures a start value that pushes the last cell past
// MaxInt is rejected before allocation.
func TestSpiral_Overflow(t *testing.T) {
	_, err := matrix.Spiral(2, matrix.WithStart(math.MaxInt-2))
	require.ErrorIs(t, err, matrix.ErrValueOverflow)

	// exactly fits: values MaxInt-3 .. MaxInt
	g, err := matrix.Spiral(2, matrix.WithStart(math.MaxInt-3))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g[1][0])

	_, err = matrix.Spiral(math.MaxInt / 2)
	require.ErrorIs(t, err, matrix.ErrValueOverflow)

	// smallest size whose cell count no longer fits in int
	edge := int(math.Sqrt(float64(math.MaxInt))) + 1
	for edge-1 > math.MaxInt/(edge-1) {
		edge--
	}
	g, err = matrix.Spiral(edge)
	require.ErrorIs(t, err, matrix.ErrValueOverflow, "size=%d", edge)
	assert.Nil(t, g)
}

// TestSpiral_Known compares small sizes against hand-written grids.
func TestSpiral_Known(t *testing.T) {
	cases := []struct {
		size int
		want [][]int
	}{
		{1, [][]int{{1}}},
		{2, [][]int{{1, 2}, {4, 3}}},
		{3, [][]int{{1, 2, 3}, {8, 9, 4}, {7, 6, 5}}},
		{4, [][]int{
			{1, 2, 3, 4},
			{12, 13, 14, 5},
			{11, 16, 15, 6},
			{10, 9, 8, 7},
		}},
		{5, [][]int{
			{1, 2, 3, 4, 5},
			{16, 17, 18, 19, 6},
			{15, 24, 25, 20, 7},
			{14, 23, 22, 21, 8},
			{13, 12, 11, 10, 9},
		}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("size=%d", tc.size), func(t *testing.T) {
			got, err := matrix.Spiral(tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "\n%s", matrix.Format(got))
		})
	}
}

// TestSpiral_Properties checks, for a range of sizes, that every value in
// 1..n² appears exactly once, that [0][0] is 1, and that the clockwise
// boundary walk yields 1..4n-4.
func TestSpiral_Properties(t *testing.T) {
	for n := 1; n <= 16; n++ {
		g, err := matrix.Spiral(n)
		require.NoError(t, err)
		require.Len(t, g, n)

		seen := make([]bool, n*n+1)
		for _, row := range g {
			require.Len(t, row, n)
			for _, v := range row {
				require.True(t, v >= 1 && v <= n*n, "value %d out of range for n=%d", v, n)
				require.False(t, seen[v], "value %d repeated for n=%d", v, n)
				seen[v] = true
			}
		}
		assert.Equal(t, 1, g[0][0])

		if n == 1 {
			continue
		}
		want := 1
		for _, v := range boundary(g) {
			require.Equal(t, want, v, "boundary walk n=%d", n)
			want++
		}
		assert.Equal(t, 4*n-3, want)
	}
}

// TestSpiral_WithStart shifts every value by start-1.
func TestSpiral_WithStart(t *testing.T) {
	base, err := matrix.Spiral(4)
	require.NoError(t, err)
	shifted, err := matrix.Spiral(4, matrix.WithStart(-5))
	require.NoError(t, err)

	for i := range base {
		for j := range base[i] {
			assert.Equal(t, base[i][j]-6, shifted[i][j])
		}
	}
}

// TestSpiral_CounterClockwiseIsTranspose verifies the documented relation
// between the two walking directions.
func TestSpiral_CounterClockwiseIsTranspose(t *testing.T) {
	for n := 1; n <= 9; n++ {
		cw, err := matrix.Spiral(n)
		require.NoError(t, err)
		ccw, err := matrix.Spiral(n, matrix.WithDirection(matrix.CounterClockwise))
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(t, cw[i][j], ccw[j][i], "n=%d (%d,%d)", n, i, j)
			}
		}
	}

	got, err := matrix.Spiral(3, matrix.WithDirection(matrix.CounterClockwise))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 8, 7}, {2, 9, 6}, {3, 4, 5}}, got)
}

// TestSpiral_RowsDoNotAlias ensures appending to one row cannot overwrite the
// next row of the shared backing buffer.
func TestSpiral_RowsDoNotAlias(t *testing.T) {
	g, err := matrix.Spiral(3)
	require.NoError(t, err)

	_ = append(g[0], 100)
	assert.Equal(t, []int{8, 9, 4}, g[1])
}

// boundary returns the outer ring of a square grid in clockwise order
// starting at [0][0].
func boundary(g [][]int) []int {
	n := len(g)
	out := make([]int, 0, 4*n-4)
	for j := 0; j < n; j++ {
		out = append(out, g[0][j])
	}
	for i := 1; i < n; i++ {
		out = append(out, g[i][n-1])
	}
	for j := n - 2; j >= 0; j-- {
		out = append(out, g[n-1][j])
	}
	for i := n - 2; i >= 1; i-- {
		out = append(out, g[i][0])
	}

	return out
}
