package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/tensor"
)

// Common errors.
var (
	// ErrInvalidArgument is returned for bad constructor parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDimensionMismatch is returned when a vector length disagrees with
	// the configured node count. It is the same value as
	// tensor.ErrDimensionMismatch.
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func dimensionMismatch(format string, args ...any) error {
	return errors.Wrapf(ErrDimensionMismatch, format, args...)
}
