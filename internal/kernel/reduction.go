package kernel

import (
	"github.com/latticework/tensorkernel/internal/config"
	"github.com/latticework/tensorkernel/internal/tensor"
)

// execReduction runs a reduction op. op.Dst must already be allocated with
// the keepDims=true reduce shape (same rank as op.In, reduced axes sized 1);
// the façade reshapes down afterwards if the caller asked for
// keepDims=false.
func execReduction(op *tensor.Op, cfg config.Config) {
	if op.Initial != 0 {
		op.Dst.Fill(op.Initial)
	}

	inShape := op.In.Shape()
	rank := len(inShape)

	inStrides := op.In.Strides()
	// Reduced axes map to stride 0 so every input element sharing the same
	// non-reduced coordinates lands on the same destination cell.
	dstStrides := op.Dst.BroadcastStridesTo(rank)

	in := op.In.Data()
	dst := op.Dst.Data()
	body := op.Body
	combine := op.Combine

	if cfg.SmallTensorThreshold > 0 && inShape.NumElements() < cfg.SmallTensorThreshold {
		generalWalk(inShape, [][]int{inStrides, dstStrides}, func(ptrs []int) {
			dst[ptrs[1]] = combine(dst[ptrs[1]], body(in[ptrs[0]], 0))
		})
	} else {
		switch rank {
		case 1:
			reductionVector(in, dst, body, combine, inShape[0], inStrides[0], dstStrides[0])
		case 2:
			reductionMatrix(in, dst, body, combine, inShape, inStrides, dstStrides)
		default:
			generalWalk(inShape, [][]int{inStrides, dstStrides}, func(ptrs []int) {
				dst[ptrs[1]] = combine(dst[ptrs[1]], body(in[ptrs[0]], 0))
			})
		}
	}

	if op.ShouldPostProcess {
		n := tensor.ReducedCount(inShape, op.ReducedDims)
		finalize := op.Finalize
		for i := range dst {
			dst[i] = finalize(dst[i], n)
		}
	}
}

func reductionVector(in, dst []float64, body tensor.ScalarBody, combine tensor.Update, size, inStride, dstStride int) {
	inPtr, dPtr := 0, 0
	for i := 0; i < size; i++ {
		dst[dPtr] = combine(dst[dPtr], body(in[inPtr], 0))
		inPtr += inStride
		dPtr += dstStride
	}
}

func reductionMatrix(in, dst []float64, body tensor.ScalarBody, combine tensor.Update, shape tensor.Shape, inStrides, dstStrides []int) {
	inRow, dRow := 0, 0
	for i := 0; i < shape[0]; i++ {
		inPtr, dPtr := inRow, dRow
		for j := 0; j < shape[1]; j++ {
			dst[dPtr] = combine(dst[dPtr], body(in[inPtr], 0))
			inPtr += inStrides[1]
			dPtr += dstStrides[1]
		}
		inRow += inStrides[0]
		dRow += dstStrides[0]
	}
}
