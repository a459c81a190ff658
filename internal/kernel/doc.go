// Package kernel implements the execution kernel: the generic, rank-agnostic
// machinery that walks strided tensors (one, two, or three operands
// simultaneously), applies a per-element scalar body, and respects
// broadcasting, reduction masking, and result stride layout.
//
// Every high-level operation in package tensor (the public façade) reduces
// to building an internal/tensor.Op and submitting it here. The kernel is
// single-threaded and synchronous: a call to Exec or ExecAtDim returns only
// once the destination tensor is fully written.
package kernel
