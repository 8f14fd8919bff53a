package dataset

import (
	"strings"

	"github.com/pkg/errors"
)

// Label is the outcome of an overtaking attempt.
type Label int

// Possible outcomes. The value is also the index of the output node that
// represents the label.
const (
	True Label = iota
	False
)

// Labels lists every label in output-node order.
var Labels = []Label{True, False}

// ErrUnknownLabel is returned when a label string is neither TRUE nor FALSE.
var ErrUnknownLabel = errors.New("unknown label")

// String returns the label as it appears in the data file.
func (l Label) String() string {
	switch l {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// ParseLabel converts TRUE/FALSE (case-insensitive, surrounding space
// ignored) to a Label.
func ParseLabel(s string) (Label, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return True, nil
	case "FALSE":
		return False, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLabel, "%q", s)
	}
}
