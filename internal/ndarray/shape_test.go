package ndarray

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{7}, 7},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{2, 0, 3}.Validate())

	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.Contains(t, err.Error(), "dimension 1 is -1")
}

// overflowShapes returns shapes whose element count does not fit in an int.
func overflowShapes() []Shape {
	half := 1 << (bits.UintSize / 2)
	return []Shape{
		{half, half},
		{3, math.MaxInt/2 + 1},
		{0, half, half},
	}
}

func TestShapeValidate_Overflow(t *testing.T) {
	for _, shape := range overflowShapes() {
		err := shape.Validate()
		assert.ErrorIs(t, err, ErrInvalidShape, "%v", []int(shape))
	}

	// Large but representable.
	assert.NoError(t, Shape{1, math.MaxInt}.Validate())
	assert.NoError(t, Shape{2, math.MaxInt / 2}.Validate())
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c[0] = 9
	assert.Equal(t, 2, s[0], "clone must not alias")
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2, 3, 1}))
}

func TestStridesEqualAndClone(t *testing.T) {
	s := Strides{3, 1}
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c[1] = 5
	assert.Equal(t, 1, s[1], "clone must not alias")
	assert.False(t, s.Equal(c))
}

func TestParseShape(t *testing.T) {
	shape, err := ParseShape(" 2, 3 ,4")
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, shape)

	shape, err = ParseShape("")
	require.NoError(t, err)
	assert.Equal(t, 0, shape.Rank())

	_, err = ParseShape("2,x")
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = ParseShape("2,-3")
	assert.ErrorIs(t, err, ErrInvalidShape)
}
