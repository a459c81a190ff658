package tensor

// Shape is the ordered sequence of positive dimension sizes of a tensor.
// A scalar has the empty Shape{} (rank 0, length 1).
type Shape []int

// NumElements returns the product of the dimensions (1 for a scalar).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Validate reports whether every dimension is at least 1.
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 1 {
			return ShapeErrorf("invalid dimension at axis %d: %d (must be >= 1)", i, d)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// ComputeStrides returns the row-major strides for a freshly allocated,
// contiguous tensor of this shape: stride[i] = product(shape[i+1:]).
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// BroadcastShapes implements NumPy-style right-aligned broadcasting: the two
// shapes are compared dimension by dimension from the trailing axis, missing
// leading axes are treated as size 1, and each output dimension is the max
// of the two inputs provided the other is either equal or 1.
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make(Shape, rank)
	for i := 0; i < rank; i++ {
		aIdx := len(a) - rank + i
		bIdx := len(b) - rank + i

		aDim, bDim := 1, 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			out[i] = aDim
		case aDim == 1:
			out[i] = bDim
		case bDim == 1:
			out[i] = aDim
		default:
			return nil, ShapeErrorf("shapes not broadcastable: %v vs %v (axis %d: %d vs %d)", a, b, i, aDim, bDim)
		}
	}
	return out, nil
}

// GetBroadcastedShape left-pads src with 1s so that its rank equals the rank
// of target. It does not validate compatibility; that is BroadcastShapes'
// job.
func GetBroadcastedShape(src, target Shape) Shape {
	if len(src) >= len(target) {
		return src.Clone()
	}
	out := make(Shape, len(target))
	pad := len(target) - len(src)
	for i := 0; i < pad; i++ {
		out[i] = 1
	}
	copy(out[pad:], src)
	return out
}

// NormalizeAxis resolves a possibly-negative axis index (-1 = last) against
// a rank, returning a shape error if it is out of range either way.
func NormalizeAxis(axis, rank int) (int, error) {
	resolved := axis
	if resolved < 0 {
		resolved += rank
	}
	if resolved < 0 || resolved >= rank {
		return 0, ShapeErrorf("axis %d out of range for rank %d", axis, rank)
	}
	return resolved, nil
}

// GetReducedDims builds the boolean reduced-axis mask for a shape given a
// list of (possibly negative) axis indices. An empty dims list means "reduce
// all axes" (mirrors the source's dims=-1-with-no-further-arg convention).
func GetReducedDims(shape Shape, dims []int) ([]bool, error) {
	mask := make([]bool, len(shape))
	if len(dims) == 0 {
		for i := range mask {
			mask[i] = true
		}
		return mask, nil
	}
	for _, d := range dims {
		resolved, err := NormalizeAxis(d, len(shape))
		if err != nil {
			return nil, err
		}
		mask[resolved] = true
	}
	return mask, nil
}

// ReduceShape computes the output shape of reducing shape over the axes
// named by mask. When keepDims is true, reduced axes become size 1;
// otherwise they are removed, and an all-reduced shape collapses to rank 0.
func ReduceShape(shape Shape, mask []bool, keepDims bool) Shape {
	if keepDims {
		out := shape.Clone()
		for i, reduced := range mask {
			if reduced {
				out[i] = 1
			}
		}
		return out
	}

	out := make(Shape, 0, len(shape))
	for i, reduced := range mask {
		if !reduced {
			out = append(out, shape[i])
		}
	}
	return out
}

// ReducedCount returns the product of the sizes of the reduced axes (the
// divisor used by mean's post-process finalizer).
func ReducedCount(shape Shape, mask []bool) int {
	n := 1
	for i, reduced := range mask {
		if reduced {
			n *= shape[i]
		}
	}
	return n
}

// ComputeOffset returns the linear buffer offset for a multi-index under the
// given strides: offset = sum(indices[i] * strides[i]).
func ComputeOffset(indices []int, strides []int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * strides[i]
	}
	return offset
}
