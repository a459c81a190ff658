package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBroadcast(t *testing.T) {
	matrix, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	row, err := FromSlice([]float64{10, 20}, Shape{2})
	require.NoError(t, err)

	out, err := Add(matrix, row)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, []float64{11, 22, 13, 24}, out.Data())
}

func TestAddIncompatibleShapesErrors(t *testing.T) {
	a, err := New(Shape{2, 3})
	require.NoError(t, err)
	b, err := New(Shape{2, 4})
	require.NoError(t, err)
	_, err = Add(a, b)
	assert.Error(t, err)
}

func TestDivPropagatesInfAndNaN(t *testing.T) {
	a, err := FromSlice([]float64{1, 0, -1}, Shape{3})
	require.NoError(t, err)
	zero, err := FromSlice([]float64{0, 0, 0}, Shape{3})
	require.NoError(t, err)

	out, err := Div(a, zero)
	require.NoError(t, err)
	assert.True(t, math.IsInf(out.Data()[0], 1))
	assert.True(t, math.IsNaN(out.Data()[1]))
	assert.True(t, math.IsInf(out.Data()[2], -1))
}

func TestLogOfZeroAndNegativePropagates(t *testing.T) {
	x, err := FromSlice([]float64{0, -1, math.E}, Shape{3})
	require.NoError(t, err)
	out, err := Log(x)
	require.NoError(t, err)
	assert.True(t, math.IsInf(out.Data()[0], -1))
	assert.True(t, math.IsNaN(out.Data()[1]))
	assert.InDelta(t, 1.0, out.Data()[2], 1e-9)
}

func TestSqrtOfNegativePropagatesNaN(t *testing.T) {
	x, err := FromSlice([]float64{4, -1}, Shape{2})
	require.NoError(t, err)
	out, err := Sqrt(x)
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Data()[0])
	assert.True(t, math.IsNaN(out.Data()[1]))
}

func TestComparisons(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)
	b, err := FromSlice([]float64{3, 2, 1}, Shape{3})
	require.NoError(t, err)

	out, err := Greater(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, out.Data())

	out, err = Equal(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, out.Data())
}

func TestWhere(t *testing.T) {
	cond, err := FromSlice([]float64{1, 0, 1}, Shape{3})
	require.NoError(t, err)
	x, err := FromSlice([]float64{1, 1, 1}, Shape{3})
	require.NoError(t, err)
	y, err := FromSlice([]float64{0, 0, 0}, Shape{3})
	require.NoError(t, err)

	out, err := Where(cond, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, out.Data())
}

func TestRelu(t *testing.T) {
	x, err := FromSlice([]float64{-1, 0, 2}, Shape{3})
	require.NoError(t, err)
	out, err := Relu(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2}, out.Data())
}
