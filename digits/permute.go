// SPDX-License-Identifier: MIT

package digits

import "github.com/katalvlaran/lvloop/sorting"

const opNearestGreater = "NearestGreater"

// NearestGreater returns the smallest integer strictly greater than n that
// uses exactly the same multiset of decimal digits. When no such number
// exists (digits already non-increasing) n is returned unchanged with a nil
// error; that is a defined result, not a failure.
//
// Errors:
//   - ErrNonPositive if n <= 0.
//   - ErrOverflow if the permutation is larger than math.MaxInt.
//
// Example:
//
//	NearestGreater(123450) // 123504, nil
func NearestGreater(n int) (int, error) {
	if n <= 0 {
		return 0, digitsErrorf(opNearestGreater, ErrNonPositive)
	}
	ds := Split(n)

	p := findPivot(ds)
	if p < 0 {
		return n, nil
	}
	s := pickSuccessor(ds, p)
	ds[p], ds[s] = ds[s], ds[p]
	sortTail(ds, p+1)

	v, err := Join(ds)
	if err != nil {
		return 0, digitsErrorf(opNearestGreater, err)
	}

	return v, nil
}

// findPivot returns the rightmost index p with ds[p] < ds[p+1], or -1 when
// ds is non-increasing.
func findPivot(ds []int) int {
	for i := len(ds) - 1; i > 0; i-- {
		if ds[i-1] < ds[i] {
			return i - 1
		}
	}

	return -1
}

// pickSuccessor returns the index of the smallest digit in ds[pivot+1:] that
// is strictly greater than ds[pivot]. The tail is non-increasing, so the
// rightmost greater digit is the smallest one; taking the rightmost of equal
// candidates keeps the tail non-increasing after the swap.
// pivot must be a result of findPivot (>= 0).
func pickSuccessor(ds []int, pivot int) int {
	for j := len(ds) - 1; j > pivot; j-- {
		if ds[j] > ds[pivot] {
			return j
		}
	}

	return -1
}

// sortTail sorts ds[from:] ascending in place.
func sortTail(ds []int, from int) {
	if from >= len(ds) {
		return
	}
	sorting.SortAscending(ds[from:])
}
