package tensor

import (
	"math"

	"github.com/latticework/tensorkernel/internal/kernel"
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

func identity(a, _ float64) float64 { return a }

func unary(t *Tensor, body itensor.ScalarBody) (*Tensor, error) {
	dst, err := itensor.New(t.Shape())
	if err != nil {
		return nil, err
	}
	op := &itensor.Op{Family: itensor.Transform, In: t, Dst: dst, Body: body}
	if err := kernel.Default().Exec(op); err != nil {
		return nil, err
	}
	return dst, nil
}

func binary(a, b *Tensor, body itensor.ScalarBody) (*Tensor, error) {
	shape, err := itensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}
	if kernel.Default().Config().StrictShapeChecks && !a.Shape().Equal(b.Shape()) && a.Rank() != 0 && b.Rank() != 0 {
		return nil, itensor.ShapeErrorf("binary: strict shape checks enabled, %v and %v differ and neither is scalar", a.Shape(), b.Shape())
	}
	dst, err := itensor.New(shape)
	if err != nil {
		return nil, err
	}
	op := &itensor.Op{Family: itensor.Pairwise, In: a, In2: b, Dst: dst, Body: body}
	if err := kernel.Default().Exec(op); err != nil {
		return nil, err
	}
	return dst, nil
}

// Add returns a + b, elementwise, with broadcasting.
func Add(a, b *Tensor) (*Tensor, error) { return binary(a, b, func(x, y float64) float64 { return x + y }) }

// Sub returns a - b, elementwise, with broadcasting.
func Sub(a, b *Tensor) (*Tensor, error) { return binary(a, b, func(x, y float64) float64 { return x - y }) }

// Mul returns a * b, elementwise, with broadcasting.
func Mul(a, b *Tensor) (*Tensor, error) { return binary(a, b, func(x, y float64) float64 { return x * y }) }

// Div returns a / b, elementwise, with broadcasting. Division by zero
// propagates IEEE-754 Inf/NaN rather than raising an error.
func Div(a, b *Tensor) (*Tensor, error) { return binary(a, b, func(x, y float64) float64 { return x / y }) }

// Pow returns a ** b, elementwise, with broadcasting.
func Pow(a, b *Tensor) (*Tensor, error) { return binary(a, b, math.Pow) }

// Neg returns -t, elementwise.
func Neg(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return -x }) }

// Abs returns |t|, elementwise.
func Abs(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Abs(x) }) }

// Sin returns sin(t), elementwise.
func Sin(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Sin(x) }) }

// Cos returns cos(t), elementwise.
func Cos(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Cos(x) }) }

// Exp returns e**t, elementwise.
func Exp(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Exp(x) }) }

// Log returns the natural logarithm of t, elementwise. log(0) and log of a
// negative number propagate -Inf/NaN per IEEE-754 rather than raising an
// error.
func Log(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Log(x) }) }

// Sqrt returns the square root of t, elementwise. sqrt of a negative number
// propagates NaN rather than raising an error.
func Sqrt(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Sqrt(x) }) }

// Relu returns max(0, t), elementwise.
func Relu(t *Tensor) (*Tensor, error) {
	return unary(t, func(x, _ float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Sigmoid returns 1/(1+e**-t), elementwise.
func Sigmoid(t *Tensor) (*Tensor, error) {
	return unary(t, func(x, _ float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Tanh returns tanh(t), elementwise.
func Tanh(t *Tensor) (*Tensor, error) { return unary(t, func(x, _ float64) float64 { return math.Tanh(x) }) }
