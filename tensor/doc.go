// Package tensor is the public mathematical façade over the execution
// kernel in internal/kernel and the tensor value in internal/tensor. It
// names each operation, infers the result shape, builds the appropriate op
// descriptor, and submits it to the process-wide dispatcher. The façade
// itself holds no state. Most operations do no computation of their own
// beyond shape inference and descriptor construction; Cat, Chunk, Tile,
// MaxPool2D and MaxPool2DScatter are the exceptions, copying or scanning
// data in façade-level loops.
package tensor

import (
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// Tensor is the engine's tensor value: a flat float64 buffer plus shape and
// strides. It is a type alias over internal/tensor.Tensor so that façade
// callers and internal kernel code share the exact same representation with
// no wrapping or copying at the boundary.
type Tensor = itensor.Tensor

// Shape is the ordered sequence of a tensor's dimension sizes.
type Shape = itensor.Shape
