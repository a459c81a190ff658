package tensor

import (
	"github.com/latticework/tensorkernel/internal/kernel"
	itensor "github.com/latticework/tensorkernel/internal/tensor"
)

// MatMul computes the matrix product of a and b, both of which must be rank
// 2. transposeA/transposeB read the corresponding operand as if transposed
// without materializing the transpose.
func MatMul(a, b *Tensor, transposeA, transposeB bool) (*Tensor, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, itensor.RankErrorf("matmul: operands must be rank 2, got %d and %d", a.Rank(), b.Rank())
	}

	aShape, bShape := a.Shape(), b.Shape()
	aRows, aCols := aShape[0], aShape[1]
	if transposeA {
		aRows, aCols = aCols, aRows
	}
	bRows, bCols := bShape[0], bShape[1]
	if transposeB {
		bRows, bCols = bCols, bRows
	}
	if aCols != bRows {
		return nil, itensor.ShapeErrorf("matmul: inner dimensions mismatch (%d vs %d)", aCols, bRows)
	}

	dst, err := itensor.New(itensor.Shape{aRows, bCols})
	if err != nil {
		return nil, err
	}

	op := &itensor.Op{
		Family: itensor.Special, Kind: itensor.MatMulSpecial,
		In: a, In2: b, Dst: dst, TransposeA: transposeA, TransposeB: transposeB,
	}
	if err := kernel.Default().Exec(op); err != nil {
		return nil, err
	}
	return dst, nil
}
