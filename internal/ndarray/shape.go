package ndarray

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Shape holds the extent of each dimension, outermost first.
type Shape []int

// Strides holds, per dimension, how many buffer positions to advance when
// the index along that dimension grows by one.
type Strides []int

// NumElements returns the product of all dimensions.
// A rank-0 shape is a scalar with one element; any zero dimension gives 0.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is non-negative and that the
// product of the non-zero dimensions fits in an int. Every stride and
// element count derived from the shape is bounded by that product.
// Zero-sized dimensions are allowed and describe an empty array.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be >= 0)", i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return errors.Wrapf(ErrInvalidShape, "element count of %v overflows int", []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Equal checks if two stride vectors are equal.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}

// ParseShape parses a comma-separated list of dimensions such as "2,3,4".
// Whitespace around entries is ignored and an empty string is the rank-0 shape.
func ParseShape(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Shape{}, nil
	}
	parts := strings.Split(text, ",")
	shape := make(Shape, len(parts))
	for i, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidShape, "dimension %d: %v", i, err)
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
