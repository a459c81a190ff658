package kernel

import "github.com/latticework/tensorkernel/internal/tensor"

// generalWalk visits every index of shape exactly once, in row-major
// (lexicographic) order, invoking visit with the current linear offset into
// each operand named by strideSets. Each entry of strideSets must have the
// same length as shape.
//
// This is the rank-agnostic fallback walker: it maintains one pointer per
// operand and advances them by per-axis strides, cascading carries up the
// axis chain on wraparound, with O(1) amortized bookkeeping per element and
// no per-element division.
func generalWalk(shape tensor.Shape, strideSets [][]int, visit func(ptrs []int)) {
	rank := len(shape)
	n := shape.NumElements()
	ptrs := make([]int, len(strideSets))
	counters := make([]int, rank)

	for step := 0; step < n; step++ {
		visit(ptrs)
		if step == n-1 {
			break
		}

		axis := rank - 1
		for axis >= 0 {
			counters[axis]++
			for k, strides := range strideSets {
				ptrs[k] += strides[axis]
			}
			if counters[axis] < shape[axis] {
				break
			}
			counters[axis] = 0
			for k, strides := range strideSets {
				ptrs[k] -= strides[axis] * shape[axis]
			}
			axis--
		}
	}
}
