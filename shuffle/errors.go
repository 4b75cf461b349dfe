// SPDX-License-Identifier: MIT

package shuffle

import "errors"

var (
	// ErrNegativeIterations indicates a negative iteration count.
	ErrNegativeIterations = errors.New("shuffle: iteration count must be >= 0")
)
