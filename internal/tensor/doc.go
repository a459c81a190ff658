// Package tensor defines the core data model of the tensor computation
// engine: the strided Tensor value, shape arithmetic (broadcasting,
// reduction shapes, offset computation) and the Op descriptor consumed by
// the execution kernel in package kernel.
//
// The engine assumes a single floating-point element type (float64); there
// is no generic DType machinery here, unlike a multi-dtype tensor library.
package tensor
