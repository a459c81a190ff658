package tensor

import (
	"math"

	"github.com/latticework/tensorkernel/internal/kernel"
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// reducer names the body/update/initial/post quadruple for a reduction
// (spec's reducer table).
type reducer struct {
	body     itensor.ScalarBody
	combine  itensor.Update
	initial  float64
	post     bool
	finalize itensor.GetResult
}

var (
	sumReducer = reducer{body: identity, combine: func(a, b float64) float64 { return a + b }, initial: 0}
	prodReducer = reducer{body: identity, combine: func(a, b float64) float64 { return a * b }, initial: 1}
	minReducer = reducer{body: identity, combine: math.Min, initial: math.Inf(1)}
	maxReducer = reducer{body: identity, combine: math.Max, initial: math.Inf(-1)}
	meanReducer = reducer{
		body: identity, combine: func(a, b float64) float64 { return a + b }, initial: 0,
		post: true, finalize: func(acc float64, n int) float64 { return acc / float64(n) },
	}
)

func reduce(t *Tensor, dims []int, keepDims bool, r reducer) (*Tensor, error) {
	mask, err := itensor.GetReducedDims(t.Shape(), dims)
	if err != nil {
		return nil, err
	}

	keepShape := itensor.ReduceShape(t.Shape(), mask, true)
	dst, err := itensor.New(keepShape)
	if err != nil {
		return nil, err
	}

	op := &itensor.Op{
		Family: itensor.Reduction, In: t, Dst: dst, Body: r.body,
		ReducedDims: mask, Initial: r.initial, Combine: r.combine,
		ShouldPostProcess: r.post, Finalize: r.finalize,
	}
	if err := kernel.Default().Exec(op); err != nil {
		return nil, err
	}

	if keepDims {
		return dst, nil
	}
	return dst.Reshape(itensor.ReduceShape(t.Shape(), mask, false))
}

// ReduceSum sums t over dims (all axes if dims is empty).
func ReduceSum(t *Tensor, dims []int, keepDims bool) (*Tensor, error) {
	return reduce(t, dims, keepDims, sumReducer)
}

// ReduceProd multiplies t's elements over dims.
func ReduceProd(t *Tensor, dims []int, keepDims bool) (*Tensor, error) {
	return reduce(t, dims, keepDims, prodReducer)
}

// ReduceMin takes the minimum of t's elements over dims.
func ReduceMin(t *Tensor, dims []int, keepDims bool) (*Tensor, error) {
	return reduce(t, dims, keepDims, minReducer)
}

// ReduceMax takes the maximum of t's elements over dims.
func ReduceMax(t *Tensor, dims []int, keepDims bool) (*Tensor, error) {
	return reduce(t, dims, keepDims, maxReducer)
}

// ReduceMean averages t's elements over dims.
func ReduceMean(t *Tensor, dims []int, keepDims bool) (*Tensor, error) {
	return reduce(t, dims, keepDims, meanReducer)
}

// ArgMax returns the index along dim holding the largest value, with dim
// removed from the result shape. Ties resolve to the earliest index.
func ArgMax(t *Tensor, dim int) (*Tensor, error) {
	resolved, err := itensor.NormalizeAxis(dim, t.Rank())
	if err != nil {
		return nil, err
	}

	mask := make([]bool, t.Rank())
	mask[resolved] = true
	dst, err := itensor.New(itensor.ReduceShape(t.Shape(), mask, false))
	if err != nil {
		return nil, err
	}

	op := &itensor.Op{
		Family: itensor.IndexReduction, In: t, Dst: dst,
		IndexCombine: func(accum, value float64, accumIndex, i int) (float64, int) {
			if value > accum {
				return value, i
			}
			return accum, accumIndex
		},
	}
	if err := kernel.Default().ExecAtDim(op, resolved); err != nil {
		return nil, err
	}
	return dst, nil
}

// Softmax computes softmax(t) along dim: exp(x - max) normalized to sum 1.
func Softmax(t *Tensor, dim int) (*Tensor, error) {
	dst, err := itensor.New(t.Shape())
	if err != nil {
		return nil, err
	}
	op := &itensor.Op{Family: itensor.Special, Kind: itensor.SoftmaxSpecial, In: t, Dst: dst, Dim: dim}
	if err := kernel.Default().Exec(op); err != nil {
		return nil, err
	}
	return dst, nil
}
