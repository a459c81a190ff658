package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticework/tensorkernel/internal/tensor"
)

func identity(a, _ float64) float64 { return a }
func add(a, b float64) float64      { return a + b }

func TestExecReductionSumKeepDims(t *testing.T) {
	in, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	mask := []bool{false, true} // reduce axis 1
	dst, err := tensor.New(tensor.Shape{2, 1})
	require.NoError(t, err)

	op := &tensor.Op{Family: tensor.Reduction, In: in, Dst: dst, Body: identity, Combine: add, ReducedDims: mask}
	require.NoError(t, Default().Exec(op))
	assert.Equal(t, []float64{6, 15}, dst.Data())
}

func TestExecReductionMeanPostProcess(t *testing.T) {
	in, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	mask := []bool{true, true}
	dst, err := tensor.New(tensor.Shape{1, 1})
	require.NoError(t, err)

	op := &tensor.Op{
		Family: tensor.Reduction, In: in, Dst: dst, Body: identity, Combine: add, ReducedDims: mask,
		ShouldPostProcess: true, Finalize: func(acc float64, n int) float64 { return acc / float64(n) },
	}
	require.NoError(t, Default().Exec(op))
	assert.Equal(t, 2.5, dst.Data()[0])
}

func TestExecReductionVector(t *testing.T) {
	in, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)
	mask := []bool{true}
	dst, err := tensor.New(tensor.Shape{1})
	require.NoError(t, err)

	op := &tensor.Op{Family: tensor.Reduction, In: in, Dst: dst, Body: identity, Combine: add, ReducedDims: mask}
	require.NoError(t, Default().Exec(op))
	assert.Equal(t, float64(10), dst.Data()[0])
}
