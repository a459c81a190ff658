package kernel

import (
	"github.com/latticework/tensorkernel/internal/config"
	"github.com/latticework/tensorkernel/internal/tensor"
)

// execTransform runs a single-operand elementwise op into op.Dst, which
// shares op.In's shape. Input strides are used verbatim: unlike pairwise,
// there is no broadcasting to fold in.
func execTransform(op *tensor.Op, cfg config.Config) {
	shape := op.In.Shape()
	rank := len(shape)

	inStrides := op.In.Strides()
	dstStrides := op.Dst.Strides()

	in := op.In.Data()
	dst := op.Dst.Data()
	body := op.Body

	if cfg.SmallTensorThreshold > 0 && shape.NumElements() < cfg.SmallTensorThreshold {
		generalWalk(shape, [][]int{inStrides, dstStrides}, func(ptrs []int) {
			dst[ptrs[1]] = body(in[ptrs[0]], 0)
		})
		return
	}

	switch rank {
	case 0:
		dst[0] = body(in[0], 0)
	case 1:
		inPtr, dPtr := 0, 0
		for i := 0; i < shape[0]; i++ {
			dst[dPtr] = body(in[inPtr], 0)
			inPtr += inStrides[0]
			dPtr += dstStrides[0]
		}
	case 2:
		inRow, dRow := 0, 0
		for i := 0; i < shape[0]; i++ {
			inPtr, dPtr := inRow, dRow
			for j := 0; j < shape[1]; j++ {
				dst[dPtr] = body(in[inPtr], 0)
				inPtr += inStrides[1]
				dPtr += dstStrides[1]
			}
			inRow += inStrides[0]
			dRow += dstStrides[0]
		}
	default:
		generalWalk(shape, [][]int{inStrides, dstStrides}, func(ptrs []int) {
			dst[ptrs[1]] = body(in[ptrs[0]], 0)
		})
	}
}
