package nn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/overtake/internal/optim"
	"github.com/born-ml/overtake/internal/random"
	"github.com/born-ml/overtake/internal/tensor"
)

// Config describes the size and learning rate of a Network.
type Config struct {
	InputNodes   int
	HiddenNodes  int
	OutputNodes  int
	LearningRate float64
}

// Validate checks that every node count is positive and the learning rate
// is a positive finite number.
func (c Config) Validate() error {
	if c.InputNodes <= 0 {
		return invalidArgument("input nodes must be > 0 (got %d)", c.InputNodes)
	}
	if c.HiddenNodes <= 0 {
		return invalidArgument("hidden nodes must be > 0 (got %d)", c.HiddenNodes)
	}
	if c.OutputNodes <= 0 {
		return invalidArgument("output nodes must be > 0 (got %d)", c.OutputNodes)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) {
		return invalidArgument("learning rate must be positive and finite (got %v)", c.LearningRate)
	}
	return nil
}

// Network is a fully connected feed-forward network with one hidden layer
// and sigmoid activations on both layers, trained by online backpropagation.
//
// Architecture:
//   - hidden: Linear (input → hidden), weights [hidden, input]
//   - output: Linear (hidden → output), weights [output, hidden]
//   - sigmoid after each layer
//
// A Network has a single owner and is not safe for concurrent use. Query
// never writes weights; Train is the only mutating operation.
//
// Example:
//
//	net, err := nn.New(3, 5, 2, 0.2, random.New(0))
//	err = net.Train([]float64{0.1, 0.2, 0.3}, []float64{0.01, 0.99})
//	out, err := net.Query([]float64{0.1, 0.2, 0.3})
type Network struct {
	cfg       Config
	hidden    *Linear
	output    *Linear
	act       *SigmoidLayer
	optimizer optim.Optimizer
}

// New creates a network with inputNodes → hiddenNodes → outputNodes units.
//
// Weights are drawn from rng (see LeCunNormal): the hidden matrix first,
// then the output matrix. Returns ErrInvalidArgument for non-positive sizes,
// a non-positive learning rate, or a nil rng.
func New(inputNodes, hiddenNodes, outputNodes int, learningRate float64, rng *random.Source) (*Network, error) {
	return NewFromConfig(Config{
		InputNodes:   inputNodes,
		HiddenNodes:  hiddenNodes,
		OutputNodes:  outputNodes,
		LearningRate: learningRate,
	}, rng)
}

// NewFromConfig creates a network from cfg. See New.
func NewFromConfig(cfg Config, rng *random.Source) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, invalidArgument("random source is nil")
	}

	sgd, err := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	return &Network{
		cfg:       cfg,
		hidden:    NewLinear("hidden", cfg.InputNodes, cfg.HiddenNodes, rng),
		output:    NewLinear("output", cfg.HiddenNodes, cfg.OutputNodes, rng),
		act:       NewSigmoidLayer(),
		optimizer: sgd,
	}, nil
}

// Query runs a forward pass and returns the output activations.
//
// Returns ErrDimensionMismatch if len(input) != InputNodes. Every returned
// value lies strictly inside (0, 1).
func (n *Network) Query(input []float64) ([]float64, error) {
	_, out, err := n.forward(input)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Train performs one online backpropagation step on a single sample.
//
// Steps:
//  1. forward pass, keeping the hidden and final activations
//  2. outputDelta = (target − final) ⊙ final(1 − final)
//  3. hiddenError = W_oᵀ · outputDelta, using W_o as it was before this call
//  4. hiddenDelta = hiddenError ⊙ hidden(1 − hidden)
//  5. W_o += lr · outputDelta ⊗ hidden, W_h += lr · hiddenDelta ⊗ input
//
// Both lengths are checked before anything is computed, so a failed call
// leaves the weights untouched.
func (n *Network) Train(input, target []float64) error {
	if len(input) != n.cfg.InputNodes {
		return dimensionMismatch("Train: expected %d inputs, got %d", n.cfg.InputNodes, len(input))
	}
	if len(target) != n.cfg.OutputNodes {
		return dimensionMismatch("Train: expected %d targets, got %d", n.cfg.OutputNodes, len(target))
	}

	hiddenOut, finalOut, err := n.forward(input)
	if err != nil {
		return err
	}

	outputError, err := tensor.Sub(target, finalOut)
	if err != nil {
		return errors.Wrap(err, "output error")
	}
	outputDelta, err := tensor.Mul(outputError, n.act.Derivative(finalOut))
	if err != nil {
		return errors.Wrap(err, "output delta")
	}

	// Must run before the output update below.
	hiddenError, err := n.output.Backward(outputDelta)
	if err != nil {
		return errors.Wrap(err, "hidden error")
	}
	hiddenDelta, err := tensor.Mul(hiddenError, n.act.Derivative(hiddenOut))
	if err != nil {
		return errors.Wrap(err, "hidden delta")
	}

	outputGrad, err := n.output.Gradient(outputDelta, hiddenOut)
	if err != nil {
		return err
	}
	hiddenGrad, err := n.hidden.Gradient(hiddenDelta, input)
	if err != nil {
		return err
	}

	if err := n.optimizer.Step(n.output.Weight().Matrix(), outputGrad); err != nil {
		return errors.Wrap(err, "update output weights")
	}
	if err := n.optimizer.Step(n.hidden.Weight().Matrix(), hiddenGrad); err != nil {
		return errors.Wrap(err, "update hidden weights")
	}
	return nil
}

// forward returns the hidden and final activations for input.
func (n *Network) forward(input []float64) (hiddenOut, finalOut []float64, err error) {
	if len(input) != n.cfg.InputNodes {
		return nil, nil, dimensionMismatch("expected %d inputs, got %d", n.cfg.InputNodes, len(input))
	}

	hiddenRaw, err := n.hidden.Forward(input)
	if err != nil {
		return nil, nil, err
	}
	hiddenOut = n.act.Forward(hiddenRaw)

	outputRaw, err := n.output.Forward(hiddenOut)
	if err != nil {
		return nil, nil, err
	}
	finalOut = n.act.Forward(outputRaw)

	return hiddenOut, finalOut, nil
}

// Parameters returns the hidden and output weight parameters.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2)
	params = append(params, n.hidden.Parameters()...)
	params = append(params, n.output.Parameters()...)
	return params
}

// HiddenWeights returns a copy of the input→hidden weights [hidden, input].
func (n *Network) HiddenWeights() *tensor.Matrix {
	return n.hidden.Weight().Matrix().Clone()
}

// OutputWeights returns a copy of the hidden→output weights [output, hidden].
func (n *Network) OutputWeights() *tensor.Matrix {
	return n.output.Weight().Matrix().Clone()
}

// Config returns the construction parameters.
func (n *Network) Config() Config { return n.cfg }

// InputNodes returns the input layer size.
func (n *Network) InputNodes() int { return n.cfg.InputNodes }

// HiddenNodes returns the hidden layer size.
func (n *Network) HiddenNodes() int { return n.cfg.HiddenNodes }

// OutputNodes returns the output layer size.
func (n *Network) OutputNodes() int { return n.cfg.OutputNodes }

// LearningRate returns the learning rate.
func (n *Network) LearningRate() float64 { return n.cfg.LearningRate }
