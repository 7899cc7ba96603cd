package ndarray

import "github.com/pkg/errors"

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// The result has the rank of the longer shape.
//
// Examples:
//
//	(3, 1, 5) + (4, 5) → (3, 4, 5)
//	(3, 5) + (3, 5)    → (3, 5)
//	(2, 3) + (2, 4)    → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := max(len(a), len(b))
	result := make(Shape, rank)

	for i := 0; i < rank; i++ {
		aDim := dimOrOne(a, i-(rank-len(a)))
		bDim := dimOrOne(b, i-(rank-len(b)))

		switch {
		case aDim == bDim:
			result[i] = aDim
		case aDim == 1:
			result[i] = bDim
		case bDim == 1:
			result[i] = aDim
		default:
			return nil, errors.Wrapf(ErrBroadcast, "%v vs %v (dimension %d: %d vs %d)",
				[]int(a), []int(b), i, aDim, bDim)
		}
	}

	return result, nil
}

// BroadcastStrides returns strides that let an array with the given shape
// and strides be read as if it had shape out. Dimensions that are padded on
// the left or stretched from size 1 get stride 0, so every index along them
// maps to the same element.
func BroadcastStrides(shape Shape, strides Strides, out Shape) (Strides, error) {
	if len(strides) != len(shape) {
		return nil, errors.Wrapf(ErrStrideRank, "shape %v, strides %v", []int(shape), []int(strides))
	}
	if len(shape) > len(out) {
		return nil, errors.Wrapf(ErrBroadcast, "cannot broadcast rank %d shape %v to rank %d shape %v",
			len(shape), []int(shape), len(out), []int(out))
	}

	pad := len(out) - len(shape)
	result := make(Strides, len(out))
	for i := range out {
		j := i - pad
		if j < 0 {
			continue // Padded dimension, stride is 0
		}
		switch {
		case shape[j] == out[i]:
			result[i] = strides[j]
		case shape[j] == 1:
			// Stretched dimension, stride is 0
		default:
			return nil, errors.Wrapf(ErrBroadcast, "cannot expand dimension %d from %d to %d", j, shape[j], out[i])
		}
	}
	return result, nil
}

// ForEachBroadcast visits every index of the broadcast shape of a and b in
// row-major order, passing the index together with the matching offsets
// into a's and b's buffers. It returns the broadcast shape.
//
// The index slice is reused between calls; copy it if it must outlive fn.
func ForEachBroadcast(a, b Geometry, fn func(idx []int, aOff, bOff int)) (Shape, error) {
	out, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	aStrides, err := BroadcastStrides(a.shape, a.strides, out)
	if err != nil {
		return nil, err
	}
	bStrides, err := BroadcastStrides(b.shape, b.strides, out)
	if err != nil {
		return nil, err
	}

	walk(out, func(idx []int) {
		aOff, bOff := 0, 0
		for d, v := range idx {
			aOff += v * aStrides[d]
			bOff += v * bStrides[d]
		}
		fn(idx, aOff, bOff)
	})
	return out, nil
}

// dimOrOne returns shape[i], or 1 when i falls in the left padding.
func dimOrOne(shape Shape, i int) int {
	if i < 0 {
		return 1
	}
	return shape[i]
}
