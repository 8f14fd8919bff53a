package optim

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/tensor"
)

// ErrInvalidLR is returned for a learning rate that is not a positive finite number.
var ErrInvalidLR = errors.New("learning rate must be positive and finite")

// SGD implements Stochastic Gradient Descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate, must be > 0
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) (*SGD, error) {
	if !(config.LR > 0) || math.IsInf(config.LR, 1) {
		return nil, errors.Wrapf(ErrInvalidLR, "got %v", config.LR)
	}
	return &SGD{lr: config.LR}, nil
}

// Step performs param -= lr * grad in place.
//
// On a shape mismatch param is left untouched.
func (s *SGD) Step(param, grad *tensor.Matrix) error {
	if err := tensor.AddInPlace(param, tensor.Scale(grad, -s.lr)); err != nil {
		return errors.Wrap(err, "sgd step")
	}
	return nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}
