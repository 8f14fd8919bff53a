// Package optim implements the weight-update rule used by the network.
//
// Only plain stochastic gradient descent is provided: the network trains
// online, one sample at a time, with a fixed learning rate.
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.2})
//	grad, _ := layer.Gradient(delta, input)
//	err = sgd.Step(layer.Weight().Matrix(), grad)
package optim

import (
	"github.com/born-ml/overtake/internal/tensor"
)

// Optimizer updates a parameter matrix in place from its gradient.
type Optimizer interface {
	// Step applies one update to param using grad. Shapes must match.
	Step(param, grad *tensor.Matrix) error

	// GetLR returns the learning rate.
	GetLR() float64
}
