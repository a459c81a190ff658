package tensor

// Tensor is a flat, contiguous buffer of float64 scalars together with the
// shape/stride metadata needed to address it. It is the "tensor value" of
// the engine: views created by Reshape and Transpose share the buffer with
// their root rather than copying it.
type Tensor struct {
	buffer  []float64
	shape   Shape
	strides []int
}

// New allocates a zero-filled, contiguous tensor of the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor{
		buffer:  make([]float64, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// Scalar allocates a rank-0 tensor holding a single value.
func Scalar(value float64) *Tensor {
	return &Tensor{
		buffer:  []float64{value},
		shape:   Shape{},
		strides: []int{},
	}
}

// FromSlice copies data into a new contiguous tensor of the given shape.
// The slice length must equal shape.NumElements().
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, ShapeErrorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	copy(t.buffer, data)
	return t, nil
}

// viewOf builds a Tensor that shares buf with a root tensor. Reshape and
// Transpose are the only callers: both only ever rearrange shape/stride
// metadata, never the buffer.
func viewOf(buf []float64, shape Shape, strides []int) *Tensor {
	return &Tensor{buffer: buf, shape: shape, strides: strides}
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() Shape { return t.shape }

// Strides returns the tensor's memory strides, in element units.
func (t *Tensor) Strides() []int { return t.strides }

// Rank returns the number of dimensions (0 for a scalar).
func (t *Tensor) Rank() int { return len(t.shape) }

// Length returns the total element count (product of the shape).
func (t *Tensor) Length() int { return t.shape.NumElements() }

// Data returns the tensor's underlying contiguous buffer for bulk reads and
// writes. Views returned by Reshape/Transpose share this buffer with their
// root, so mutating it through one is observable through the other.
func (t *Tensor) Data() []float64 { return t.buffer }

// IsContiguous reports whether the tensor's strides match a fresh row-major
// allocation of its shape: whether it is safe to treat as a plain flat
// buffer without stride arithmetic.
func (t *Tensor) IsContiguous() bool {
	want := t.shape.ComputeStrides()
	for i := range want {
		if want[i] != t.strides[i] {
			return false
		}
	}
	return true
}

// Reshape returns a view over the same buffer with a new shape. It is only
// legal when the new shape's element count matches the tensor's current
// length; reshape of a non-contiguous tensor first materializes a
// contiguous copy, since the view model only shares storage across
// reshapes of already-contiguous data.
func (t *Tensor) Reshape(newShape Shape) (*Tensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != t.Length() {
		return nil, ShapeErrorf("reshape: %v has %d elements, cannot reshape to %v (%d elements)",
			t.shape, t.Length(), newShape, newShape.NumElements())
	}

	buf := t.buffer
	if !t.IsContiguous() {
		buf = make([]float64, t.Length())
		idx := make([]int, t.Rank())
		for flat := range buf {
			rem := flat
			for axis := t.Rank() - 1; axis >= 0; axis-- {
				idx[axis] = rem % t.shape[axis]
				rem /= t.shape[axis]
			}
			buf[flat] = t.buffer[ComputeOffset(idx, t.strides)]
		}
	}
	return viewOf(buf, newShape.Clone(), newShape.ComputeStrides()), nil
}

// Transpose returns a view permuting shape and strides in lockstep per perm
// (perm[i] names which source axis becomes axis i of the result). The
// buffer is never moved.
func (t *Tensor) Transpose(perm []int) (*Tensor, error) {
	rank := t.Rank()
	if len(perm) != rank {
		return nil, RankErrorf("transpose: permutation length %d != rank %d", len(perm), rank)
	}

	seen := make([]bool, rank)
	newShape := make(Shape, rank)
	newStrides := make([]int, rank)
	for i, axis := range perm {
		if axis < 0 || axis >= rank {
			return nil, RankErrorf("transpose: axis %d out of range for rank %d", axis, rank)
		}
		if seen[axis] {
			return nil, RankErrorf("transpose: duplicate axis %d in permutation %v", axis, perm)
		}
		seen[axis] = true
		newShape[i] = t.shape[axis]
		newStrides[i] = t.strides[axis]
	}
	return viewOf(t.buffer, newShape, newStrides), nil
}

// Fill overwrites every element of the tensor with value. Unlike most
// operations, Fill always targets t's own buffer in place; it is the
// in-place "set" primitive the rest of the package builds on.
func (t *Tensor) Fill(value float64) {
	for i := range t.buffer {
		t.buffer[i] = value
	}
}

// Clone returns a tensor with its own independent copy of the buffer.
func (t *Tensor) Clone() *Tensor {
	buf := make([]float64, len(t.buffer))
	copy(buf, t.buffer)
	return viewOf(buf, t.shape.Clone(), append([]int(nil), t.strides...))
}

// BroadcastStridesTo returns strides for reading this tensor as if it had
// targetRank dimensions: the shape is left-padded with 1s, and every size-1
// axis (including padded ones) gets stride 0 so repeated reads return the
// same element.
func (t *Tensor) BroadcastStridesTo(targetRank int) []int {
	out := make([]int, targetRank)
	offset := targetRank - t.Rank()
	for i := 0; i < targetRank; i++ {
		srcAxis := i - offset
		switch {
		case srcAxis < 0:
			out[i] = 0
		case t.shape[srcAxis] == 1:
			out[i] = 0
		default:
			out[i] = t.strides[srcAxis]
		}
	}
	return out
}
