package tensor

import (
	"github.com/latticework/tensorkernel/internal/kernel"
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// Cat concatenates tensors along dim. All tensors must share rank and agree
// on every axis except dim.
func Cat(tensors []*Tensor, dim int) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, itensor.ShapeErrorf("cat: at least one tensor required")
	}
	if len(tensors) == 1 {
		return tensors[0].Clone(), nil
	}

	rank := tensors[0].Rank()
	resolvedDim, err := itensor.NormalizeAxis(dim, rank)
	if err != nil {
		return nil, err
	}

	outShape := tensors[0].Shape().Clone()
	total := 0
	for i, t := range tensors {
		if t.Rank() != rank {
			return nil, itensor.RankErrorf("cat: tensor %d has rank %d, want %d", i, t.Rank(), rank)
		}
		for axis := 0; axis < rank; axis++ {
			if axis != resolvedDim && t.Shape()[axis] != outShape[axis] {
				return nil, itensor.ShapeErrorf("cat: tensor %d shape %v disagrees with %v at axis %d", i, t.Shape(), outShape, axis)
			}
		}
		total += t.Shape()[resolvedDim]
	}
	outShape[resolvedDim] = total

	dst, err := itensor.New(outShape)
	if err != nil {
		return nil, err
	}
	dstStrides := dst.Strides()
	dstData := dst.Data()

	offset := 0
	for _, t := range tensors {
		srcShape := t.Shape()
		srcStrides := t.Strides()
		srcData := t.Data()
		n := srcShape.NumElements()
		idx := make([]int, rank)
		for flat := 0; flat < n; flat++ {
			rem := flat
			for axis := rank - 1; axis >= 0; axis-- {
				idx[axis] = rem % srcShape[axis]
				rem /= srcShape[axis]
			}
			srcOff := itensor.ComputeOffset(idx, srcStrides)
			idx[resolvedDim] += offset
			dstOff := itensor.ComputeOffset(idx, dstStrides)
			idx[resolvedDim] -= offset
			dstData[dstOff] = srcData[srcOff]
		}
		offset += srcShape[resolvedDim]
	}
	return dst, nil
}

// Chunk splits t into n equal parts along dim; the dimension size must be
// divisible by n.
func Chunk(t *Tensor, chunks, dim int) ([]*Tensor, error) {
	resolvedDim, err := itensor.NormalizeAxis(dim, t.Rank())
	if err != nil {
		return nil, err
	}
	size := t.Shape()[resolvedDim]
	if chunks <= 0 || size%chunks != 0 {
		return nil, itensor.ShapeErrorf("chunk: axis %d size %d not divisible by %d chunks", resolvedDim, size, chunks)
	}
	chunkSize := size / chunks

	srcShape := t.Shape()
	srcStrides := t.Strides()
	srcData := t.Data()
	rank := t.Rank()

	result := make([]*Tensor, chunks)
	for ci := 0; ci < chunks; ci++ {
		outShape := srcShape.Clone()
		outShape[resolvedDim] = chunkSize
		dst, err := itensor.New(outShape)
		if err != nil {
			return nil, err
		}
		dstStrides := dst.Strides()
		dstData := dst.Data()

		base := ci * chunkSize
		n := outShape.NumElements()
		idx := make([]int, rank)
		for flat := 0; flat < n; flat++ {
			rem := flat
			for axis := rank - 1; axis >= 0; axis-- {
				idx[axis] = rem % outShape[axis]
				rem /= outShape[axis]
			}
			dstOff := itensor.ComputeOffset(idx, dstStrides)
			idx[resolvedDim] += base
			srcOff := itensor.ComputeOffset(idx, srcStrides)
			idx[resolvedDim] -= base
			dstData[dstOff] = srcData[srcOff]
		}
		result[ci] = dst
	}
	return result, nil
}

// Unsqueeze inserts a size-1 axis at dim. It is a view: the buffer is shared.
func Unsqueeze(t *Tensor, dim int) (*Tensor, error) {
	rank := t.Rank()
	resolved, err := itensor.NormalizeAxis(dim, rank+1)
	if err != nil {
		return nil, err
	}
	shape := t.Shape()
	newShape := make(Shape, rank+1)
	copy(newShape[:resolved], shape[:resolved])
	newShape[resolved] = 1
	copy(newShape[resolved+1:], shape[resolved:])
	return t.Reshape(newShape)
}

// Squeeze removes a size-1 axis at dim. It is a view: the buffer is shared.
func Squeeze(t *Tensor, dim int) (*Tensor, error) {
	resolved, err := itensor.NormalizeAxis(dim, t.Rank())
	if err != nil {
		return nil, err
	}
	shape := t.Shape()
	if shape[resolved] != 1 {
		return nil, itensor.ShapeErrorf("squeeze: axis %d has size %d, not 1", resolved, shape[resolved])
	}
	newShape := make(Shape, 0, t.Rank()-1)
	newShape = append(newShape, shape[:resolved]...)
	newShape = append(newShape, shape[resolved+1:]...)
	return t.Reshape(newShape)
}

// AddN folds pairwise addition over a non-empty list of equal-shaped
// tensors. AddN(x) equals a clone of x.
func AddN(tensors ...*Tensor) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, itensor.ShapeErrorf("addN: at least one tensor required")
	}
	acc := tensors[0].Clone()
	var err error
	for _, t := range tensors[1:] {
		acc, err = Add(acc, t)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Tile replicates t's contents reps[i] times along axis i (reps is
// left-padded with 1s if shorter than t's rank). Unlike broadcasting, which
// re-reads a single element via stride 0, Tile copies: it is broadcasting's
// dual.
func Tile(t *Tensor, reps []int) (*Tensor, error) {
	rank := t.Rank()
	if len(reps) > rank {
		return nil, itensor.RankErrorf("tile: reps length %d exceeds rank %d", len(reps), rank)
	}
	padded := make([]int, rank)
	for i := 0; i < rank-len(reps); i++ {
		padded[i] = 1
	}
	copy(padded[rank-len(reps):], reps)

	shape := t.Shape()
	outShape := make(Shape, rank)
	for i := range outShape {
		outShape[i] = shape[i] * padded[i]
	}

	dst, err := itensor.New(outShape)
	if err != nil {
		return nil, err
	}
	srcStrides := t.Strides()
	srcData := t.Data()
	dstStrides := dst.Strides()
	dstData := dst.Data()

	n := outShape.NumElements()
	idx := make([]int, rank)
	srcIdx := make([]int, rank)
	for flat := 0; flat < n; flat++ {
		rem := flat
		for axis := rank - 1; axis >= 0; axis-- {
			idx[axis] = rem % outShape[axis]
			rem /= outShape[axis]
			srcIdx[axis] = idx[axis] % shape[axis]
		}
		dstData[itensor.ComputeOffset(idx, dstStrides)] = srcData[itensor.ComputeOffset(srcIdx, srcStrides)]
	}
	return dst, nil
}

// Scatter writes each sources[i] into dst at row indices[i], column i: the
// index-set primitive. dst must be rank 2; the scatter axis is fixed at
// axis 0 (the only case the kernel's index-set walker supports).
func Scatter(dst, sources, indices *Tensor) error {
	op := &itensor.Op{Family: itensor.IndexSet, Dst: dst, Sources: sources, Indices: indices}
	return kernel.Default().ExecAtDim(op, 0)
}
