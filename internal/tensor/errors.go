package tensor

import "github.com/pkg/errors"

// Sentinel error categories. Callers use errors.Is/errors.As against these
// to classify a failure without parsing message text.
var (
	// ErrShape covers broadcast incompatibility, reshape length mismatch,
	// reduction axis out of range, and pre-allocated destinations of the
	// wrong shape.
	ErrShape = errors.New("tensor: shape error")

	// ErrRank covers matmul called on non-rank-2 operands and transpose
	// permutations of the wrong length.
	ErrRank = errors.New("tensor: rank error")
)

// ShapeErrorf wraps ErrShape with a formatted detail message.
func ShapeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrShape, format, args...)
}

// RankErrorf wraps ErrRank with a formatted detail message.
func RankErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrRank, format, args...)
}
