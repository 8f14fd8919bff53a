// Package nn implements the single-hidden-layer feed-forward network.
//
// This package provides:
//   - Parameter: a named weight matrix
//   - Linear: a bias-free fully connected layer
//   - Sigmoid: the logistic activation and its derivative
//   - LeCunNormal: N(0, 1/sqrt(fan_in)) weight initialization
//   - SquaredError, MSE: losses used for monitoring
//   - Network: Query (inference) and Train (online backpropagation)
//
// Layer layout mirrors a PyTorch Linear: weights are stored
// [out_features, in_features].
package nn

// Module is implemented by every component that owns trainable weights.
type Module interface {
	// Parameters returns the trainable parameters of the module.
	Parameters() []*Parameter
}
