package nn

import (
	"math"

	"github.com/born-ml/overtake/internal/tensor"
)

// sigmoidClamp bounds the pre-activation so that Sigmoid stays strictly
// inside (0, 1) in float64.
const sigmoidClamp = 30.0

// Sigmoid applies the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// The two-branch form never evaluates exp of a large positive number.
func Sigmoid(x float64) float64 {
	switch {
	case x > sigmoidClamp:
		x = sigmoidClamp
	case x < -sigmoidClamp:
		x = -sigmoidClamp
	}

	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// SigmoidDerivativeFromOutput returns σ'(x) expressed through y = σ(x):
// y * (1 - y).
func SigmoidDerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}

// SigmoidLayer is a sigmoid activation module.
//
// Example:
//
//	act := nn.NewSigmoidLayer()
//	out := act.Forward(raw) // values in (0, 1)
type SigmoidLayer struct{}

// NewSigmoidLayer creates a new sigmoid activation module.
func NewSigmoidLayer() *SigmoidLayer {
	return &SigmoidLayer{}
}

// Forward applies Sigmoid elementwise.
func (s *SigmoidLayer) Forward(input []float64) []float64 {
	return tensor.Apply(input, Sigmoid)
}

// Derivative returns σ' for each activation in output.
func (s *SigmoidLayer) Derivative(output []float64) []float64 {
	return tensor.Apply(output, SigmoidDerivativeFromOutput)
}

// Parameters returns nil (sigmoid has no trainable parameters).
func (s *SigmoidLayer) Parameters() []*Parameter {
	return nil
}
