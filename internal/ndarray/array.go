package ndarray

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/pkg/errors"
)

// Array binds a Geometry to a storage provider.
//
// Type Parameters:
//   - T: Element type
//   - S: Storage provider owning the contiguous element buffer
//
// Array computes offsets and asks S to resize; it never allocates elements
// itself. It is not safe for concurrent mutation.
//
// Example:
//
//	a, err := ndarray.New[float32](ndarray.NewBuffer[float32](0), ndarray.Shape{2, 3}, ndarray.RowMajor)
//	if err != nil {
//	    return err
//	}
//	a.Set(1.5, 1, 2)      // unchecked, zero overhead
//	v, err := a.Get(1, 2) // bounds-checked
type Array[T any, S Storage[T]] struct {
	geom    Geometry
	storage S
	cfg     parallel.Config
}

// New creates an array of the given shape with canonical strides for l and
// resizes storage to shape.NumElements().
func New[T any, S Storage[T]](storage S, shape Shape, l Layout) (*Array[T, S], error) {
	geom, err := NewGeometry(shape, l)
	if err != nil {
		return nil, err
	}
	storage.Resize(RequiredSize(geom.shape, geom.strides, l))
	return newArray[T](storage, geom), nil
}

// NewFilled is New with every element set to value.
func NewFilled[T any, S Storage[T]](storage S, shape Shape, value T, l Layout) (*Array[T, S], error) {
	a, err := New[T](storage, shape, l)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// NewStrided creates an array with caller-supplied strides. Storage is
// resized to shape.NumElements() regardless of the strides; see
// NewStridedGeometry for the caller's side of that contract.
func NewStrided[T any, S Storage[T]](storage S, shape Shape, strides Strides) (*Array[T, S], error) {
	geom, err := NewStridedGeometry(shape, strides)
	if err != nil {
		return nil, err
	}
	storage.Resize(geom.NumElements())
	return newArray[T](storage, geom), nil
}

// NewStridedFilled is NewStrided with newly grown elements set to value.
// Elements the storage already held keep their values.
func NewStridedFilled[T any, S Storage[T]](storage S, shape Shape, strides Strides, value T) (*Array[T, S], error) {
	geom, err := NewStridedGeometry(shape, strides)
	if err != nil {
		return nil, err
	}
	storage.ResizeFill(geom.NumElements(), value)
	return newArray[T](storage, geom), nil
}

func newArray[T any, S Storage[T]](storage S, geom Geometry) *Array[T, S] {
	return &Array[T, S]{
		geom:    geom,
		storage: storage,
		cfg:     parallel.DefaultConfig(),
	}
}

// SetParallelConfig sets how Fill and Apply split work across goroutines.
func (a *Array[T, S]) SetParallelConfig(cfg parallel.Config) {
	a.cfg = cfg
}

// Reshape replaces the geometry with the canonical one for shape in layout
// l and resizes storage to the new element count. Retained elements are
// not rearranged: values are only meaningful again once rewritten.
func (a *Array[T, S]) Reshape(shape Shape, l Layout) error {
	if err := a.geom.Reshape(shape, l); err != nil {
		return errors.Wrap(err, "reshape")
	}
	a.storage.Resize(RequiredSize(a.geom.shape, a.geom.strides, l))
	return nil
}

// ReshapeStrided replaces the geometry with shape and strides and resizes
// storage to shape.NumElements().
func (a *Array[T, S]) ReshapeStrided(shape Shape, strides Strides) error {
	if err := a.geom.ReshapeStrided(shape, strides); err != nil {
		return errors.Wrap(err, "reshape")
	}
	a.storage.Resize(a.geom.NumElements())
	return nil
}

// Geometry returns a copy of the array's geometry.
func (a *Array[T, S]) Geometry() Geometry {
	return a.geom.Clone()
}

// Shape returns the array's shape.
func (a *Array[T, S]) Shape() Shape {
	return a.geom.Shape()
}

// Strides returns the array's strides.
func (a *Array[T, S]) Strides() Strides {
	return a.geom.Strides()
}

// Rank returns the number of dimensions.
func (a *Array[T, S]) Rank() int {
	return a.geom.Rank()
}

// Dim returns the size of dimension i.
func (a *Array[T, S]) Dim(i int) int {
	return a.geom.Dim(i)
}

// Size returns the number of elements held by the storage.
func (a *Array[T, S]) Size() int {
	return a.storage.Len()
}

// Storage returns the storage provider.
func (a *Array[T, S]) Storage() S {
	return a.storage
}

// Data returns the storage's contiguous buffer.
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T, S]) Data() []T {
	return a.storage.Data()
}

// At returns the element at the given indices.
//
// Indices are not validated against the shape. An offset that lands
// outside the buffer panics with Go's index-out-of-range error; one that
// lands inside it silently reads another element.
func (a *Array[T, S]) At(indices ...int) T {
	return a.storage.Data()[a.geom.Offset(indices...)]
}

// Set sets the element at the given indices. Unchecked, like At.
func (a *Array[T, S]) Set(value T, indices ...int) {
	a.storage.Data()[a.geom.Offset(indices...)] = value
}

// Ref returns a pointer to the element at the given indices. Unchecked, like At.
// The pointer is invalidated by any resize of the storage.
func (a *Array[T, S]) Ref(indices ...int) *T {
	return &a.storage.Data()[a.geom.Offset(indices...)]
}

// Get returns the element at the given indices after checking the index
// count, every index against its dimension and the offset against the
// buffer length.
func (a *Array[T, S]) Get(indices ...int) (T, error) {
	offset, err := a.checkedOffset(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.storage.Data()[offset], nil
}

// Put sets the element at the given indices with the same checks as Get.
func (a *Array[T, S]) Put(value T, indices ...int) error {
	offset, err := a.checkedOffset(indices)
	if err != nil {
		return err
	}
	a.storage.Data()[offset] = value
	return nil
}

func (a *Array[T, S]) checkedOffset(indices []int) (int, error) {
	offset, err := a.geom.CheckedOffset(indices...)
	if err != nil {
		return 0, err
	}
	if n := a.storage.Len(); offset < 0 || offset >= n {
		return 0, errors.Wrapf(ErrOffsetOutOfBuffer, "indices %v map to offset %d, buffer holds %d elements",
			indices, offset, n)
	}
	return offset, nil
}

// BroadcastShape aligns the array's shape with candidate under NumPy
// broadcasting rules, reporting false if they are incompatible.
func (a *Array[T, S]) BroadcastShape(candidate Shape) (Shape, bool) {
	return a.geom.BroadcastShape(candidate)
}

// All yields buffer positions and elements front to back.
// This is raw storage order, which matches logical row-major order only
// for row-major strides.
func (a *Array[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.storage.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields buffer positions and elements back to front.
func (a *Array[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		data := a.storage.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Values yields elements in buffer order.
func (a *Array[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.storage.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// Indices yields every valid index tuple in row-major logical order with
// its buffer offset. See Geometry.Indices.
func (a *Array[T, S]) Indices() iter.Seq2[[]int, int] {
	return a.geom.Indices()
}

// Fill sets every buffer element to value.
func (a *Array[T, S]) Fill(value T) {
	data := a.storage.Data()
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = value
		}
	}, a.cfg)
}

// Apply replaces every buffer element v with fn(v). fn may run
// concurrently on disjoint elements and must not touch the array.
func (a *Array[T, S]) Apply(fn func(T) T) {
	data := a.storage.Data()
	parallel.ForRange(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = fn(data[i])
		}
	}, a.cfg)
}

// Clone copies the geometry and elements into dst and returns the new
// array. dst is resized to the source buffer length.
func (a *Array[T, S]) Clone(dst S) *Array[T, S] {
	src := a.storage.Data()
	dst.Resize(len(src))
	copy(dst.Data(), src)
	c := newArray[T](dst, a.geom.Clone())
	c.cfg = a.cfg
	return c
}

// Reset clears the array to an empty rank-1 geometry of size 0 and
// releases the storage's elements.
func (a *Array[T, S]) Reset() {
	a.geom = Geometry{shape: Shape{0}, strides: Strides{1}}
	a.storage.Resize(0)
}

// String returns a human-readable representation of the array.
func (a *Array[T, S]) String() string {
	return fmt.Sprintf("Array[%s]%v strides %v", reflect.TypeFor[T](), []int(a.geom.shape), []int(a.geom.strides))
}
