// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Shape holds the extent of each dimension, outermost first.
// Example: Shape{2, 3, 4} is a 3D array of 2×3×4 elements.
type Shape = ndarray.Shape

// Strides holds the buffer step of each dimension.
type Strides = ndarray.Strides

// Layout is a directive for deriving canonical strides.
type Layout = ndarray.Layout

// Layout constants.
const (
	RowMajor    Layout = ndarray.RowMajor
	ColumnMajor Layout = ndarray.ColumnMajor
)

// Geometry is an array's shape and strides.
type Geometry = ndarray.Geometry

// Storage is the capability an array needs from its element buffer.
type Storage[T any] = ndarray.Storage[T]

// Buffer is a slice-backed Storage.
type Buffer[T any] = ndarray.Buffer[T]

// Array binds a Geometry to a Storage provider.
//
// T is the element type, S the storage provider.
type Array[T any, S Storage[T]] = ndarray.Array[T, S]

// ParallelConfig controls how Fill and Apply split work across goroutines.
type ParallelConfig = parallel.Config

// Errors returned by this package. Match them with errors.Is.
var (
	ErrInvalidShape      = ndarray.ErrInvalidShape
	ErrStrideRank        = ndarray.ErrStrideRank
	ErrIndexCount        = ndarray.ErrIndexCount
	ErrIndexOutOfRange   = ndarray.ErrIndexOutOfRange
	ErrOffsetOutOfBuffer = ndarray.ErrOffsetOutOfBuffer
	ErrBroadcast         = ndarray.ErrBroadcast
	ErrUnknownLayout     = ndarray.ErrUnknownLayout
)

// New creates an array of the given shape in layout l and resizes storage
// to shape.NumElements().
func New[T any, S Storage[T]](storage S, shape Shape, l Layout) (*Array[T, S], error) {
	return ndarray.New[T](storage, shape, l)
}

// NewFilled is New with every element set to value.
func NewFilled[T any, S Storage[T]](storage S, shape Shape, value T, l Layout) (*Array[T, S], error) {
	return ndarray.NewFilled[T](storage, shape, value, l)
}

// NewStrided creates an array with explicit strides. Storage is sized from
// the shape alone; keeping strides within it is the caller's responsibility.
func NewStrided[T any, S Storage[T]](storage S, shape Shape, strides Strides) (*Array[T, S], error) {
	return ndarray.NewStrided[T](storage, shape, strides)
}

// NewStridedFilled is NewStrided with newly grown elements set to value.
func NewStridedFilled[T any, S Storage[T]](storage S, shape Shape, strides Strides, value T) (*Array[T, S], error) {
	return ndarray.NewStridedFilled[T](storage, shape, strides, value)
}

// NewBuffer returns a buffer of n zero values.
func NewBuffer[T any](n int) *Buffer[T] {
	return ndarray.NewBuffer[T](n)
}

// BufferOf returns a buffer holding a copy of values.
func BufferOf[T any](values ...T) *Buffer[T] {
	return ndarray.BufferOf(values...)
}

// NewGeometry returns the canonical geometry of shape in layout l.
func NewGeometry(shape Shape, l Layout) (Geometry, error) {
	return ndarray.NewGeometry(shape, l)
}

// NewStridedGeometry returns a geometry with explicit strides.
func NewStridedGeometry(shape Shape, strides Strides) (Geometry, error) {
	return ndarray.NewStridedGeometry(shape, strides)
}

// ComputeStrides returns the canonical strides of shape in layout l.
func ComputeStrides(shape Shape, l Layout) Strides {
	return ndarray.ComputeStrides(shape, l)
}

// BroadcastShapes returns the NumPy broadcast of a and b, or an error
// wrapping ErrBroadcast.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(a, b)
}

// BroadcastStrides returns strides that read shape/strides as shape out,
// with stride 0 on broadcast dimensions.
func BroadcastStrides(shape Shape, strides Strides, out Shape) (Strides, error) {
	return ndarray.BroadcastStrides(shape, strides, out)
}

// ForEachBroadcast visits every index of the broadcast shape of a and b with
// the matching offsets into each, and returns that shape.
func ForEachBroadcast(a, b Geometry, fn func(idx []int, aOff, bOff int)) (Shape, error) {
	return ndarray.ForEachBroadcast(a, b, fn)
}

// ParseShape parses a comma-separated shape such as "2,3,4".
func ParseShape(text string) (Shape, error) {
	return ndarray.ParseShape(text)
}

// ParseLayout parses a layout name such as "row" or "column_major".
func ParseLayout(s string) (Layout, error) {
	return ndarray.ParseLayout(s)
}

// UnravelIndex converts a row-major flat position into indices.
func UnravelIndex(flat int, shape Shape) []int {
	return ndarray.UnravelIndex(flat, shape)
}

// DefaultParallelConfig returns the parallel settings new arrays start with.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
