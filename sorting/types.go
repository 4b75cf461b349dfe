// SPDX-License-Identifier: MIT

package sorting

import "golang.org/x/exp/constraints"

// Number is the set of element types accepted by SortAscending.
type Number interface {
	constraints.Integer | constraints.Float
}
