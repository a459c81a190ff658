package kernel

import "github.com/latticework/tensorkernel/internal/tensor"

// execIndexReduction implements the index-reduction walker (argmax and
// friends): it enumerates every multi-index of op.In except dim, and for
// each one scans dim threading (accumValue, accumIndex) through
// op.IndexCombine. op.Dst must already be allocated with dim removed from
// op.In's shape.
func execIndexReduction(op *tensor.Op, dim int) {
	inShape := op.In.Shape()
	rank := len(inShape)
	inStrides := op.In.Strides()

	dimSize := inShape[dim]
	dimStride := inStrides[dim]

	outerShape := make(tensor.Shape, 0, rank-1)
	outerInStrides := make([]int, 0, rank-1)
	for axis := 0; axis < rank; axis++ {
		if axis == dim {
			continue
		}
		outerShape = append(outerShape, inShape[axis])
		outerInStrides = append(outerInStrides, inStrides[axis])
	}

	in := op.In.Data()
	dst := op.Dst.Data()
	dstStrides := op.Dst.Strides()
	combine := op.IndexCombine

	generalWalk(outerShape, [][]int{outerInStrides, dstStrides}, func(ptrs []int) {
		base := ptrs[0]
		accumVal := in[base]
		accumIdx := 0
		for i := 1; i < dimSize; i++ {
			v := in[base+i*dimStride]
			accumVal, accumIdx = combine(accumVal, v, accumIdx, i)
		}
		dst[ptrs[1]] = float64(accumIdx)
	})
}

// execIndexSet implements the index-set (scatter) primitive. It is only
// defined for a rank-2 destination with the scatter axis fixed at axis 0.
// op.Sources and op.Indices must be rank-1 tensors of the same length as
// op.Dst's second dimension; for column i, op.Sources[i] is written to
// op.Dst[op.Indices[i], i].
func execIndexSet(op *tensor.Op, dim int) error {
	if op.Dst.Rank() != 2 || dim != 0 {
		return tensor.RankErrorf("index-set: only defined for a rank-2 destination scattering along axis 0, got rank %d axis %d", op.Dst.Rank(), dim)
	}

	cols := op.Dst.Shape()[1]
	if op.Sources.Length() != cols || op.Indices.Length() != cols {
		return tensor.ShapeErrorf("index-set: sources/indices length must equal destination column count %d", cols)
	}

	dstStrides := op.Dst.Strides()
	dst := op.Dst.Data()
	src := op.Sources.Data()
	idx := op.Indices.Data()

	for i := 0; i < cols; i++ {
		target := int(idx[i])
		offset := tensor.ComputeOffset([]int{target, i}, dstStrides)
		dst[offset] = src[i]
	}
	return nil
}
