// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/overtake/internal/nn"
	"github.com/born-ml/overtake/internal/random"
	"github.com/born-ml/overtake/internal/tensor"
)

// Errors.
var (
	// ErrInvalidArgument reports bad constructor parameters.
	ErrInvalidArgument = nn.ErrInvalidArgument
	// ErrDimensionMismatch reports a vector whose length disagrees with the
	// network configuration.
	ErrDimensionMismatch = nn.ErrDimensionMismatch
)

// Network is a feed-forward network with one sigmoid hidden layer.
type Network = nn.Network

// Config describes the size and learning rate of a Network.
type Config = nn.Config

// New creates a network with random initial weights drawn from rng.
//
// Example:
//
//	net, err := nn.New(3, 5, 2, 0.2, random.New(0))
func New(inputNodes, hiddenNodes, outputNodes int, learningRate float64, rng *random.Source) (*Network, error) {
	return nn.New(inputNodes, hiddenNodes, outputNodes, learningRate, rng)
}

// NewFromConfig creates a network from cfg.
func NewFromConfig(cfg Config, rng *random.Source) (*Network, error) {
	return nn.NewFromConfig(cfg, rng)
}

// Module is implemented by components that own trainable weights.
type Module = nn.Module

// Parameter is a named trainable weight matrix.
type Parameter = nn.Parameter

// NewParameter creates a parameter with the given name and matrix.
func NewParameter(name string, m *tensor.Matrix) *Parameter {
	return nn.NewParameter(name, m)
}

// Layers

// Linear is a bias-free fully connected layer.
type Linear = nn.Linear

// NewLinear creates a Linear layer with LeCun-normal weights.
//
// Example:
//
//	layer := nn.NewLinear("hidden", 3, 5, random.New(0))
func NewLinear(name string, inFeatures, outFeatures int, rng *random.Source) *Linear {
	return nn.NewLinear(name, inFeatures, outFeatures, rng)
}

// SigmoidLayer is the elementwise logistic activation.
type SigmoidLayer = nn.SigmoidLayer

// NewSigmoidLayer creates a sigmoid activation module.
func NewSigmoidLayer() *SigmoidLayer {
	return nn.NewSigmoidLayer()
}

// Activation helpers

// Sigmoid returns 1 / (1 + exp(-x)), strictly inside (0, 1).
func Sigmoid(x float64) float64 { return nn.Sigmoid(x) }

// SigmoidDerivativeFromOutput returns y * (1 - y) for y = Sigmoid(x).
func SigmoidDerivativeFromOutput(y float64) float64 { return nn.SigmoidDerivativeFromOutput(y) }

// Losses

// SquaredError returns Σ(target - output)².
func SquaredError(output, target []float64) (float64, error) {
	return nn.SquaredError(output, target)
}

// MSE returns the mean of (target - output)².
func MSE(output, target []float64) (float64, error) {
	return nn.MSE(output, target)
}

// Initialization

// LeCunNormal returns a matrix drawn from N(0, 1/sqrt(fanIn)).
func LeCunNormal(fanIn int, shape tensor.Shape, rng *random.Source) *tensor.Matrix {
	return nn.LeCunNormal(fanIn, shape, rng)
}
