package tensor

// Comparison ops mirror the Pairwise family but return 0.0/1.0 floats: the
// core has one floating-point element type, so there is no separate boolean
// dtype to return instead (spec: "core assumes one floating-point element
// type").

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Greater returns a > b, elementwise, as 0.0/1.0.
func Greater(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x > y) })
}

// Lower returns a < b, elementwise, as 0.0/1.0.
func Lower(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x < y) })
}

// GreaterEqual returns a >= b, elementwise, as 0.0/1.0.
func GreaterEqual(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x >= y) })
}

// LowerEqual returns a <= b, elementwise, as 0.0/1.0.
func LowerEqual(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x <= y) })
}

// Equal returns a == b, elementwise, as 0.0/1.0.
func Equal(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x == y) })
}

// NotEqual returns a != b, elementwise, as 0.0/1.0.
func NotEqual(a, b *Tensor) (*Tensor, error) {
	return binary(a, b, func(x, y float64) float64 { return boolf(x != y) })
}

// Where selects x where cond is non-zero, y otherwise, elementwise, with
// broadcasting across all three operands. It is composed from two pairwise
// multiplies and an add (cond*x + (1-cond)*y) rather than widening the
// kernel's two-operand pairwise contract to three operands.
func Where(cond, x, y *Tensor) (*Tensor, error) {
	inverse, err := Sub(Scalar(1), cond)
	if err != nil {
		return nil, err
	}
	selectedX, err := Mul(cond, x)
	if err != nil {
		return nil, err
	}
	selectedY, err := Mul(inverse, y)
	if err != nil {
		return nil, err
	}
	return Add(selectedX, selectedY)
}
