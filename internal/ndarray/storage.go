package ndarray

// Storage is the capability an array needs from whatever owns its elements:
// a contiguous, resizable sequence exposed as a slice.
//
// Resize keeps the first min(n, Len()) elements, drops the rest and
// zero-initializes any growth. ResizeFill does the same but sets grown
// slots to value. Data returns the live contiguous view; writes through it
// modify the storage.
type Storage[T any] interface {
	Len() int
	Resize(n int)
	ResizeFill(n int, value T)
	Data() []T
}

// Buffer is a slice-backed Storage.
type Buffer[T any] struct {
	data []T
}

// Compile-time check that Buffer implements Storage.
var _ Storage[float32] = (*Buffer[float32])(nil)

// NewBuffer returns a buffer of n zero values.
func NewBuffer[T any](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// BufferOf returns a buffer holding a copy of values.
func BufferOf[T any](values ...T) *Buffer[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Buffer[T]{data: data}
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Resize sets the length to n.
func (b *Buffer[T]) Resize(n int) {
	var zero T
	b.ResizeFill(n, zero)
}

// ResizeFill sets the length to n, filling new slots with value.
func (b *Buffer[T]) ResizeFill(n int, value T) {
	old := len(b.data)
	if n <= old {
		// Release references held by the dropped tail.
		clear(b.data[n:old])
		b.data = b.data[:n]
		return
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		grown := make([]T, n)
		copy(grown, b.data)
		b.data = grown
	}
	for i := old; i < n; i++ {
		b.data[i] = value
	}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Clone returns a buffer with a copy of the elements.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return BufferOf(b.data...)
}
