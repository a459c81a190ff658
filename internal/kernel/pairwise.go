package kernel

import (
	"github.com/latticework/tensorkernel/internal/config"
	"github.com/latticework/tensorkernel/internal/tensor"
)

// execPairwise runs a two-operand elementwise op into op.Dst, which must
// already be allocated with the broadcast shape of op.In and op.In2.
//
// Both operands are reshaped to the destination's rank (left-padded with
// 1s) so broadcasting reduces to stride 0 on every size-1 axis; a scalar
// operand (rank 0) broadcasts by being treated as an all-ones shape whose
// single element is read on every iteration.
//
// cfg.SmallTensorThreshold, if set, skips the rank-specialized loops below
// that threshold in favor of the general walker: the rank-specialized
// loops exist purely to amortize their own setup cost over enough elements
// to be worth it.
func execPairwise(op *tensor.Op, cfg config.Config) {
	dstShape := op.Dst.Shape()
	rank := len(dstShape)

	aStrides := op.In.BroadcastStridesTo(rank)
	bStrides := op.In2.BroadcastStridesTo(rank)
	dstStrides := dstShape.ComputeStrides()

	a := op.In.Data()
	b := op.In2.Data()
	dst := op.Dst.Data()
	body := op.Body

	if cfg.SmallTensorThreshold > 0 && dstShape.NumElements() < cfg.SmallTensorThreshold {
		generalWalk(dstShape, [][]int{aStrides, bStrides, dstStrides}, func(ptrs []int) {
			dst[ptrs[2]] = body(a[ptrs[0]], b[ptrs[1]])
		})
		return
	}

	switch rank {
	case 0:
		dst[0] = body(a[0], b[0])
	case 1:
		pairwiseRank1(dst, a, b, body, dstShape[0], dstStrides[0], aStrides[0], bStrides[0])
	case 2:
		pairwiseRank2(dst, a, b, body, dstShape, dstStrides, aStrides, bStrides)
	default:
		generalWalk(dstShape, [][]int{aStrides, bStrides, dstStrides}, func(ptrs []int) {
			dst[ptrs[2]] = body(a[ptrs[0]], b[ptrs[1]])
		})
	}
}

func pairwiseRank1(dst, a, b []float64, body tensor.ScalarBody, size, dstStride, aStride, bStride int) {
	aPtr, bPtr, dPtr := 0, 0, 0
	for i := 0; i < size; i++ {
		dst[dPtr] = body(a[aPtr], b[bPtr])
		aPtr += aStride
		bPtr += bStride
		dPtr += dstStride
	}
}

func pairwiseRank2(dst, a, b []float64, body tensor.ScalarBody, shape tensor.Shape, dstStrides, aStrides, bStrides []int) {
	rows, cols := shape[0], shape[1]
	aRow, bRow, dRow := 0, 0, 0
	for i := 0; i < rows; i++ {
		aPtr, bPtr, dPtr := aRow, bRow, dRow
		for j := 0; j < cols; j++ {
			dst[dPtr] = body(a[aPtr], b[bPtr])
			aPtr += aStrides[1]
			bPtr += bStrides[1]
			dPtr += dstStrides[1]
		}
		aRow += aStrides[0]
		bRow += bStrides[0]
		dRow += dstStrides[0]
	}
}
