package ndarray

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Layout is a directive for deriving canonical strides from a shape.
// It is consumed when strides are computed and is never stored on an array:
// afterwards the strides alone describe the memory layout.
type Layout int

// Supported layouts.
const (
	// RowMajor (C order): the last dimension varies fastest.
	RowMajor Layout = iota
	// ColumnMajor (Fortran order): the first dimension varies fastest.
	ColumnMajor
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColumnMajor:
		return "column_major"
	default:
		return "unknown"
	}
}

// ParseLayout parses a layout name, ignoring case and surrounding space.
// Row-major spellings are "row", "row_major", "rowmajor" and "c".
// Column-major spellings are "col", "column", "column_major", "colmajor" and "f".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "row_major", "rowmajor", "c":
		return RowMajor, nil
	case "col", "column", "column_major", "colmajor", "f":
		return ColumnMajor, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLayout, "%q", s)
	}
}

// ComputeStrides returns the canonical strides of a densely packed array
// with the given shape and layout.
//
// Row-major: strides[n-1] = 1 and strides[i] = strides[i+1] * shape[i+1].
// Column-major: strides[0] = 1 and strides[i] = strides[i-1] * shape[i-1].
// A rank-0 shape has no strides.
func ComputeStrides(shape Shape, l Layout) Strides {
	n := len(shape)
	strides := make(Strides, n)
	if n == 0 {
		return strides
	}

	if l == ColumnMajor {
		strides[0] = 1
		for i := 1; i < n; i++ {
			strides[i] = strides[i-1] * shape[i-1]
		}
		return strides
	}

	strides[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}

// RequiredSize returns the buffer length needed by a densely packed array
// whose strides were produced by ComputeStrides(shape, l).
// It reads the size off the outermost stride of the layout, which always
// equals shape.NumElements().
func RequiredSize(shape Shape, strides Strides, l Layout) int {
	n := len(shape)
	if n == 0 {
		return 1
	}
	if l == ColumnMajor {
		return strides[n-1] * shape[n-1]
	}
	return strides[0] * shape[0]
}

// IsContiguous reports whether strides describe a densely packed array in
// layout l. Dimensions of size 1 never move the offset, so their stride is
// not compared, and an array with no elements is always contiguous.
func IsContiguous(shape Shape, strides Strides, l Layout) bool {
	if len(shape) != len(strides) {
		return false
	}
	if slices.Contains(shape, 0) {
		return true
	}
	expected := ComputeStrides(shape, l)
	for i := range strides {
		if shape[i] > 1 && strides[i] != expected[i] {
			return false
		}
	}
	return true
}
