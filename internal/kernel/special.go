package kernel

import (
	"math"

	"github.com/latticework/tensorkernel/internal/tensor"
)

// execMatMul is the archetypal special op: it is not reducible to the
// generic walkers. op.In and op.In2 must be rank 2; op.Dst must already be
// allocated with shape [rows(op.In, op.TransposeA), cols(op.In2,
// op.TransposeB)].
func execMatMul(op *tensor.Op) error {
	a, b := op.In, op.In2
	if a.Rank() != 2 || b.Rank() != 2 {
		return tensor.RankErrorf("matmul: operands must be rank 2, got %d and %d", a.Rank(), b.Rank())
	}

	aShape, bShape := a.Shape(), b.Shape()
	aRows, aCols := aShape[0], aShape[1]
	if op.TransposeA {
		aRows, aCols = aCols, aRows
	}
	bRows, bCols := bShape[0], bShape[1]
	if op.TransposeB {
		bRows, bCols = bCols, bRows
	}
	if aCols != bRows {
		return tensor.ShapeErrorf("matmul: inner dimensions mismatch (%d vs %d)", aCols, bRows)
	}

	aStrides, bStrides := a.Strides(), b.Strides()
	aRowStride, aColStride := aStrides[0], aStrides[1]
	if op.TransposeA {
		aRowStride, aColStride = aColStride, aRowStride
	}
	bRowStride, bColStride := bStrides[0], bStrides[1]
	if op.TransposeB {
		bRowStride, bColStride = bColStride, bRowStride
	}

	aData, bData, dst := a.Data(), b.Data(), op.Dst.Data()
	dstStrides := op.Dst.Strides()

	for i := 0; i < aRows; i++ {
		aRowBase := i * aRowStride
		dstRowBase := i * dstStrides[0]
		for j := 0; j < bCols; j++ {
			bColBase := j * bColStride
			sum := 0.0
			for k := 0; k < aCols; k++ {
				sum += aData[aRowBase+k*aColStride] * bData[bColBase+k*bRowStride]
			}
			dst[dstRowBase+j*dstStrides[1]] = sum
		}
	}
	return nil
}

// execSoftmax computes softmax along op.Dim with the standard max-subtract
// stabilization. op.Dst must already be allocated with op.In's shape.
func execSoftmax(op *tensor.Op) error {
	shape := op.In.Shape()
	rank := len(shape)
	dim, err := tensor.NormalizeAxis(op.Dim, rank)
	if err != nil {
		return err
	}

	inStrides := op.In.Strides()
	dimSize := shape[dim]
	dimStride := inStrides[dim]

	outerShape := make(tensor.Shape, 0, rank-1)
	outerInStrides := make([]int, 0, rank-1)
	outerDstStrides := make([]int, 0, rank-1)
	dstStrides := op.Dst.Strides()
	for axis := 0; axis < rank; axis++ {
		if axis == dim {
			continue
		}
		outerShape = append(outerShape, shape[axis])
		outerInStrides = append(outerInStrides, inStrides[axis])
		outerDstStrides = append(outerDstStrides, dstStrides[axis])
	}

	in := op.In.Data()
	dst := op.Dst.Data()
	dimDstStride := dstStrides[dim]

	generalWalk(outerShape, [][]int{outerInStrides, outerDstStrides}, func(ptrs []int) {
		inBase, dstBase := ptrs[0], ptrs[1]

		maxVal := math.Inf(-1)
		for i := 0; i < dimSize; i++ {
			if v := in[inBase+i*dimStride]; v > maxVal {
				maxVal = v
			}
		}

		sum := 0.0
		for i := 0; i < dimSize; i++ {
			e := math.Exp(in[inBase+i*dimStride] - maxVal)
			dst[dstBase+i*dimDstStride] = e
			sum += e
		}

		for i := 0; i < dimSize; i++ {
			dst[dstBase+i*dimDstStride] /= sum
		}
	})
	return nil
}
