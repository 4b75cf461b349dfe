// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot and unchecked kernels.
//
// Purpose:
//   - Expose the resolved Options and the unchecked rotation kernels to
//     matrix_test ONLY. The file name ends in _test.go, so nothing here is
//     part of the production build.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Start     int
	Direction Direction
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Spiral does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Start: o.start, Direction: o.direction}
}

var (
	// ExportedRotateCW exposes the unchecked clockwise kernel.
	ExportedRotateCW = rotateCW
	// ExportedRotateCCW exposes the unchecked counter-clockwise kernel.
	ExportedRotateCCW = rotateCCW
)
