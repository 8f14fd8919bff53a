package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/random"
	"github.com/born-ml/overtake/internal/tensor"
)

// Linear implements a bias-free fully connected layer.
//
// Performs the transformation: y = W·x
// where:
//   - x is the input vector with length in_features
//   - W is the weight matrix with shape [out_features, in_features]
//   - y is the output vector with length out_features
//
// Weights are initialized with LeCunNormal.
//
// Example:
//
//	layer := nn.NewLinear("hidden", 3, 5, random.New(0))
//	out, err := layer.Forward([]float64{0.1, 0.2, 0.3}) // len(out) == 5
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
}

// NewLinear creates a new Linear layer named name.
//
// Panics if either feature count is not positive; Network validates sizes
// before building its layers.
func NewLinear(name string, inFeatures, outFeatures int, rng *random.Source) *Linear {
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter(name+".weight", LeCunNormal(inFeatures, weightShape, rng))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
	}
}

// Forward computes W·input.
func (l *Linear) Forward(input []float64) ([]float64, error) {
	if len(input) != l.inFeatures {
		return nil, dimensionMismatch("%s: expected %d inputs, got %d", l.weight.Name(), l.inFeatures, len(input))
	}
	return tensor.Dot(l.weight.Matrix(), input)
}

// Backward propagates a delta at the layer output back to its input: Wᵀ·delta.
func (l *Linear) Backward(delta []float64) ([]float64, error) {
	if len(delta) != l.outFeatures {
		return nil, dimensionMismatch("%s: expected %d deltas, got %d", l.weight.Name(), l.outFeatures, len(delta))
	}
	return tensor.TransposeDot(l.weight.Matrix(), delta)
}

// Gradient returns ∂E/∂W for E = ½‖target − output‖², given the layer delta
// (error times activation slope, in the target − output direction) and the
// input the layer saw on the forward pass.
func (l *Linear) Gradient(delta, input []float64) (*tensor.Matrix, error) {
	if len(delta) != l.outFeatures || len(input) != l.inFeatures {
		return nil, dimensionMismatch("%s: gradient of [%d, %d] from delta %d and input %d",
			l.weight.Name(), l.outFeatures, l.inFeatures, len(delta), len(input))
	}

	neg := tensor.Apply(delta, func(d float64) float64 { return -d })
	grad, err := tensor.Outer(neg, input)
	if err != nil {
		return nil, errors.Wrap(err, l.weight.Name())
	}
	return grad, nil
}

// Parameters returns the trainable parameters of this layer.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
