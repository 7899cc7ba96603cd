package ndarray

import (
	"fmt"
	"iter"
)

// walk calls fn with every index tuple of shape in row-major order
// (last dimension fastest). The slice passed to fn is reused.
// An empty dimension means no calls; rank 0 means one call with no indices.
func walk(shape Shape, fn func(idx []int)) {
	if shape.NumElements() == 0 {
		return
	}
	idx := make([]int, len(shape))
	for {
		fn(idx)

		d := len(shape) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Indices yields every valid index tuple of the geometry in row-major
// logical order, paired with its buffer offset. This is shape-aware
// traversal, independent of the buffer's physical order.
//
// The index slice is reused between iterations; copy it to keep it.
func (g Geometry) Indices() iter.Seq2[[]int, int] {
	return func(yield func([]int, int) bool) {
		if g.shape.NumElements() == 0 {
			return
		}
		idx := make([]int, len(g.shape))
		offset := 0
		for {
			if !yield(idx, offset) {
				return
			}

			d := len(g.shape) - 1
			for ; d >= 0; d-- {
				idx[d]++
				offset += g.strides[d]
				if idx[d] < g.shape[d] {
					break
				}
				offset -= idx[d] * g.strides[d]
				idx[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// UnravelIndex converts a row-major flat position into per-dimension indices.
// Panics if flat is outside [0, shape.NumElements()).
func UnravelIndex(flat int, shape Shape) []int {
	if flat < 0 || flat >= shape.NumElements() {
		panic(fmt.Sprintf("unravel: position %d out of range for shape %v", flat, []int(shape)))
	}
	idx := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d] = flat % shape[d]
		flat /= shape[d]
	}
	return idx
}
