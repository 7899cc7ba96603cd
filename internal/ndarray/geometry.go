// Package ndarray implements the shape, stride and offset geometry of n-dimensional arrays.
package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Geometry is the logical layout of an n-dimensional array: its shape and
// the strides that map indices onto a contiguous buffer.
//
// Shape and strides always have the same length and are replaced together
// on every reshape. Geometry does not own a buffer; see Array for the type
// that binds it to a storage provider.
//
// The zero value is a rank-0 geometry addressing a single element.
type Geometry struct {
	shape   Shape
	strides Strides
}

// NewGeometry returns the geometry of a densely packed array in layout l.
func NewGeometry(shape Shape, l Layout) (Geometry, error) {
	var g Geometry
	if err := g.Reshape(shape, l); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// NewStridedGeometry returns a geometry with caller-supplied strides.
//
// Strides are not checked against shape.NumElements(): strides that skip or
// pad positions can address offsets past a buffer sized for the shape.
// Keeping them in range is the caller's responsibility; Span reports the
// buffer length the strides actually need.
func NewStridedGeometry(shape Shape, strides Strides) (Geometry, error) {
	var g Geometry
	if err := g.ReshapeStrided(shape, strides); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Reshape replaces shape and strides with the canonical geometry of shape in
// layout l. The element count may differ from the previous one.
func (g *Geometry) Reshape(shape Shape, l Layout) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	g.shape = shape.Clone()
	g.strides = ComputeStrides(g.shape, l)
	return nil
}

// ReshapeStrided replaces shape and strides with the given ones.
func (g *Geometry) ReshapeStrided(shape Shape, strides Strides) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if len(strides) != len(shape) {
		return errors.Wrapf(ErrStrideRank, "shape %v has rank %d, strides %v have rank %d",
			shape, len(shape), strides, len(strides))
	}
	g.shape = shape.Clone()
	g.strides = strides.Clone()
	return nil
}

// Shape returns a copy of the shape.
func (g Geometry) Shape() Shape {
	return g.shape.Clone()
}

// Strides returns a copy of the strides.
func (g Geometry) Strides() Strides {
	return g.strides.Clone()
}

// Rank returns the number of dimensions.
func (g Geometry) Rank() int {
	return len(g.shape)
}

// Dim returns the size of dimension i.
func (g Geometry) Dim(i int) int {
	return g.shape[i]
}

// NumElements returns the number of logical elements, which is also the
// buffer length requested from a storage provider.
func (g Geometry) NumElements() int {
	return g.shape.NumElements()
}

// Offset returns the linear buffer position of the given indices:
// the sum of indices[i] * strides[i].
//
// No bounds checking is done. Indices past their dimension, or a wrong
// number of indices, give an offset that may fall outside the buffer.
// Use CheckedOffset when the indices are not trusted.
func (g Geometry) Offset(indices ...int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * g.strides[i]
	}
	return offset
}

// CheckedOffset is Offset with validation: the number of indices must equal
// the rank and every index must lie within its dimension.
func (g Geometry) CheckedOffset(indices ...int) (int, error) {
	if len(indices) != len(g.shape) {
		return 0, errors.Wrapf(ErrIndexCount, "expected %d indices, got %d", len(g.shape), len(indices))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= g.shape[i] {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d for dimension %d (size %d)", idx, i, g.shape[i])
		}
		offset += idx * g.strides[i]
	}
	return offset, nil
}

// Span returns one past the largest offset reachable from a valid index,
// i.e. the buffer length the strides require. It is 0 when any dimension
// is empty. For canonical strides Span equals NumElements.
func (g Geometry) Span() int {
	if len(g.shape) == 0 {
		return 1
	}
	last := 0
	for i, dim := range g.shape {
		if dim == 0 {
			return 0
		}
		if g.strides[i] > 0 {
			last += (dim - 1) * g.strides[i]
		}
	}
	return last + 1
}

// IsContiguous reports whether the strides are the canonical ones for l.
func (g Geometry) IsContiguous(l Layout) bool {
	return IsContiguous(g.shape, g.strides, l)
}

// BroadcastShape aligns the geometry's shape with candidate under NumPy
// broadcasting rules. It reports false, with a nil shape, if any aligned
// pair of dimensions differs and neither is 1.
func (g Geometry) BroadcastShape(candidate Shape) (Shape, bool) {
	result, err := BroadcastShapes(g.shape, candidate)
	if err != nil {
		return nil, false
	}
	return result, true
}

// Clone returns an independent copy of the geometry.
func (g Geometry) Clone() Geometry {
	return Geometry{
		shape:   g.shape.Clone(),
		strides: g.strides.Clone(),
	}
}

// Equal reports whether both shape and strides match.
func (g Geometry) Equal(other Geometry) bool {
	return g.shape.Equal(other.shape) && g.strides.Equal(other.strides)
}

// String returns a human-readable representation of the geometry.
func (g Geometry) String() string {
	return fmt.Sprintf("Geometry{shape: %v, strides: %v}", []int(g.shape), []int(g.strides))
}
