package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices_RowMajorOrder(t *testing.T) {
	g, err := NewGeometry(Shape{2, 2}, ColumnMajor)
	require.NoError(t, err)

	var indices [][]int
	var offsets []int
	for idx, off := range g.Indices() {
		indices = append(indices, append([]int(nil), idx...))
		offsets = append(offsets, off)
	}

	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, indices)
	// Column-major: (i, j) lives at i + 2j.
	assert.Equal(t, []int{0, 2, 1, 3}, offsets)
}

func TestIndices_CustomStrides(t *testing.T) {
	g, err := NewStridedGeometry(Shape{2, 3}, Strides{10, 2})
	require.NoError(t, err)

	var offsets []int
	for _, off := range g.Indices() {
		offsets = append(offsets, off)
	}
	assert.Equal(t, []int{0, 2, 4, 10, 12, 14}, offsets)
}

func TestIndices_Degenerate(t *testing.T) {
	var scalar Geometry
	count := 0
	for idx, off := range scalar.Indices() {
		assert.Empty(t, idx)
		assert.Equal(t, 0, off)
		count++
	}
	assert.Equal(t, 1, count)

	empty, err := NewGeometry(Shape{3, 0}, RowMajor)
	require.NoError(t, err)
	for range empty.Indices() {
		t.Fatal("empty geometry must not yield indices")
	}
}

func TestIndices_EarlyBreak(t *testing.T) {
	g, err := NewGeometry(Shape{4, 4}, RowMajor)
	require.NoError(t, err)

	count := 0
	for range g.Indices() {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestWalkMatchesIndices(t *testing.T) {
	shape := Shape{2, 3, 2}
	g, err := NewGeometry(shape, RowMajor)
	require.NoError(t, err)

	var walked []int
	walk(shape, func(idx []int) {
		walked = append(walked, g.Offset(idx...))
	})

	var iterated []int
	for _, off := range g.Indices() {
		iterated = append(iterated, off)
	}
	assert.Equal(t, iterated, walked)
	assert.Len(t, walked, 12)
}

func TestUnravelIndex(t *testing.T) {
	shape := Shape{2, 3, 4}
	g, err := NewGeometry(shape, RowMajor)
	require.NoError(t, err)

	for flat := 0; flat < shape.NumElements(); flat++ {
		idx := UnravelIndex(flat, shape)
		assert.Equal(t, flat, g.Offset(idx...))
	}

	assert.Equal(t, []int{1, 2, 3}, UnravelIndex(23, shape))
	assert.Empty(t, UnravelIndex(0, Shape{}))

	assert.Panics(t, func() { UnravelIndex(24, shape) })
	assert.Panics(t, func() { UnravelIndex(-1, shape) })
}
