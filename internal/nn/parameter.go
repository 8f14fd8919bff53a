package nn

import (
	"github.com/born-ml/overtake/internal/tensor"
)

// Parameter represents a trainable weight matrix in the network.
//
// Example:
//
//	weight := nn.NewParameter("hidden.weight", tensor.Zeros(5, 3))
//	w := weight.Matrix()
type Parameter struct {
	name   string         // Parameter name (e.g., "hidden.weight")
	matrix *tensor.Matrix // The parameter values, updated in place
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, m *tensor.Matrix) *Parameter {
	return &Parameter{
		name:   name,
		matrix: m,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Matrix returns the live parameter matrix.
//
// Mutating the result mutates the parameter.
func (p *Parameter) Matrix() *tensor.Matrix {
	return p.matrix
}

// Shape returns the parameter shape.
func (p *Parameter) Shape() tensor.Shape {
	return p.matrix.Shape()
}
