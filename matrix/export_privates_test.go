// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to the matrix_test package only.
// The file is compiled exclusively under `go test`.

var (
	// ExportedMinor exposes SquareMat.minor for white-box tests.
	ExportedMinor = (*SquareMat).minor
	// ExportedCopyFrom exposes SquareMat.copyFrom for white-box tests.
	ExportedCopyFrom = (*SquareMat).copyFrom
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts exactly like New does.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}
