// SPDX-License-Identifier: MIT

package basics

import (
	"errors"

	"github.com/katalvlaran/lvloop/sorting"
)

// Number is the set of numeric element types accepted by the generic helpers.
// It is the same constraint SortAscending uses.
type Number = sorting.Number

// NotFound is returned by index searches when nothing matches.
const NotFound = -1

// ErrOutOfRange indicates a value outside the supported domain of a conversion.
var ErrOutOfRange = errors.New("basics: value out of range")
