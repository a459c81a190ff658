package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatMulIdentity(t *testing.T) {
	identity, err := FromSlice([]float64{1, 0, 0, 1}, Shape{2, 2})
	require.NoError(t, err)
	x, err := FromSlice([]float64{5, 6, 7, 8}, Shape{2, 2})
	require.NoError(t, err)

	out, err := MatMul(identity, x, false, false)
	require.NoError(t, err)
	assert.Equal(t, x.Data(), out.Data())

	out, err = MatMul(x, identity, false, false)
	require.NoError(t, err)
	assert.Equal(t, x.Data(), out.Data())
}

func TestMatMulKnownValues(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]float64{5, 6, 7, 8}, Shape{2, 2})
	require.NoError(t, err)

	out, err := MatMul(a, b, false, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, out.Data())
}

func TestMatMulTransposeAEquivalence(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	b, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	transposed, err := a.Transpose([]int{1, 0})
	require.NoError(t, err)
	expected, err := MatMul(transposed.Clone(), b, false, false)
	require.NoError(t, err)

	got, err := MatMul(a, b, true, false)
	require.NoError(t, err)
	assert.Equal(t, expected.Data(), got.Data())
}

func TestMatMulRejectsNonRank2(t *testing.T) {
	a, err := New(Shape{3})
	require.NoError(t, err)
	b, err := New(Shape{3})
	require.NoError(t, err)
	_, err = MatMul(a, b, false, false)
	assert.Error(t, err)
}

func TestMatMulRejectsInnerDimMismatch(t *testing.T) {
	a, err := New(Shape{2, 3})
	require.NoError(t, err)
	b, err := New(Shape{4, 2})
	require.NoError(t, err)
	_, err = MatMul(a, b, false, false)
	assert.Error(t, err)
}
