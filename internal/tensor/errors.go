package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	// ErrDimensionMismatch is returned when operand sizes disagree.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidShape is returned for shapes with non-positive dimensions
	// or the wrong rank.
	ErrInvalidShape = errors.New("invalid shape")
)

// mismatch wraps ErrDimensionMismatch with the operation name and sizes.
func mismatch(op, format string, args ...any) error {
	return errors.Wrapf(ErrDimensionMismatch, "%s: %s", op, fmt.Sprintf(format, args...))
}
