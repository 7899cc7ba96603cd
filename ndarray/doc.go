// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the geometry core of n-dimensional arrays for the
// Born ML framework: shapes, strides, layouts, offset computation and
// NumPy-style broadcast alignment over a caller-supplied element buffer.
//
// # Overview
//
// An Array owns only its Geometry (shape and strides). Elements live in a
// Storage provider, any contiguous resizable buffer. The package ships
// Buffer, a slice-backed provider.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    a, err := ndarray.New[float32](ndarray.NewBuffer[float32](0), ndarray.Shape{2, 3}, ndarray.RowMajor)
//	    if err != nil {
//	        panic(err)
//	    }
//	    a.Set(1.5, 1, 2)      // unchecked, zero overhead
//	    v, err := a.Get(1, 2) // bounds-checked
//	}
//
// # Layouts
//
// RowMajor (C order) makes the last dimension vary fastest, ColumnMajor
// (Fortran order) the first. A layout is only used to derive strides; after
// that the strides alone describe the array, so transposed or padded
// geometries can be built with NewStrided.
//
//	Shape{2, 3, 4}, RowMajor    → Strides{12, 4, 1}
//	Shape{2, 3, 4}, ColumnMajor → Strides{1, 2, 6}
//
// # Indexing
//
// At, Set and Ref compute the offset sum(indices[i] * strides[i]) without
// checking indices against the shape. An offset past the buffer still
// panics through Go's slice bounds check, so memory is never corrupted, but
// an index past its dimension that stays inside the buffer silently
// addresses another element. Get and Put validate the index count, each
// index and the final offset, returning an error instead.
//
// # Broadcasting
//
// BroadcastShape follows NumPy rules: shapes are aligned on their trailing
// dimensions, the shorter one is padded with 1s, and each pair must be equal
// or contain a 1:
//
//	(3, 1, 5) with (4, 5) → (3, 4, 5)
//	(2, 3)    with (2, 4) → incompatible
//
// # Concurrency
//
// Arrays are not safe for concurrent mutation. Concurrent reads are safe when
// nothing mutates the array.
package ndarray
