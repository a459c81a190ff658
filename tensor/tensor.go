package tensor

import (
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// New allocates a zero-filled, contiguous tensor of the given shape.
func New(shape Shape) (*Tensor, error) {
	return itensor.New(shape)
}

// Scalar allocates a rank-0 tensor holding a single value.
func Scalar(value float64) *Tensor {
	return itensor.Scalar(value)
}

// Zeros allocates a zero-filled tensor of the given shape.
func Zeros(shape Shape) (*Tensor, error) {
	return itensor.New(shape)
}

// Ones allocates a tensor of the given shape filled with 1.
func Ones(shape Shape) (*Tensor, error) {
	t, err := itensor.New(shape)
	if err != nil {
		return nil, err
	}
	t.Fill(1)
	return t, nil
}

// Full allocates a tensor of the given shape filled with value.
func Full(shape Shape, value float64) (*Tensor, error) {
	t, err := itensor.New(shape)
	if err != nil {
		return nil, err
	}
	t.Fill(value)
	return t, nil
}

// FromSlice copies data into a new contiguous tensor of the given shape. The
// slice length must equal shape.NumElements().
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return itensor.FromSlice(data, shape)
}

// Set overwrites every element of t with value in place.
func Set(t *Tensor, value float64) {
	t.Fill(value)
}
