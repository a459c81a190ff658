package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndFromSlice(t *testing.T) {
	x, err := New(Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, x.Data())

	y, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, y.Data())

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestReshapeIsAView(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	y, err := x.Reshape(Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, y.Shape().Equal(Shape{3, 2}))

	x.Data()[0] = 99
	assert.Equal(t, float64(99), y.Data()[0])

	_, err = x.Reshape(Shape{4})
	assert.Error(t, err)
}

func TestTransposeSharesBuffer(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	y, err := x.Transpose([]int{1, 0})
	require.NoError(t, err)
	assert.True(t, y.Shape().Equal(Shape{3, 2}))

	x.Data()[0] = 42
	assert.Equal(t, float64(42), y.Data()[0])

	back, err := y.Transpose([]int{1, 0})
	require.NoError(t, err)
	assert.True(t, back.Shape().Equal(x.Shape()))
	assert.Equal(t, x.Strides(), back.Strides())

	_, err = x.Transpose([]int{0, 0})
	assert.Error(t, err)
	_, err = x.Transpose([]int{0})
	assert.Error(t, err)
}

func TestFillAndClone(t *testing.T) {
	x, err := New(Shape{3})
	require.NoError(t, err)
	x.Fill(7)
	assert.Equal(t, []float64{7, 7, 7}, x.Data())

	y := x.Clone()
	y.Data()[0] = 0
	assert.Equal(t, float64(7), x.Data()[0])
}

func TestBroadcastStridesTo(t *testing.T) {
	x, err := New(Shape{1, 3})
	require.NoError(t, err)
	strides := x.BroadcastStridesTo(3)
	assert.Equal(t, []int{0, 0, 1}, strides)

	scalar := Scalar(5)
	assert.Equal(t, []int{0, 0}, scalar.BroadcastStridesTo(2))
}

func TestIsContiguous(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.True(t, x.IsContiguous())

	y, err := x.Transpose([]int{1, 0})
	require.NoError(t, err)
	assert.False(t, y.IsContiguous())
}
