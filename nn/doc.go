// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the single-hidden-layer backpropagation network.
//
// # Overview
//
// This package contains:
//   - Network: Query (inference) and Train (one online backprop step)
//   - Building blocks: Linear, SigmoidLayer, Parameter
//   - Activation helpers: Sigmoid, SigmoidDerivativeFromOutput
//   - Losses: SquaredError, MSE
//   - Initialization: LeCunNormal
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/overtake/nn"
//	    "github.com/born-ml/overtake/random"
//	)
//
//	func main() {
//	    net, err := nn.New(3, 5, 2, 0.2, random.New(0))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One online training step
//	    err = net.Train([]float64{0.1, 0.2, 0.3}, []float64{0.01, 0.99})
//
//	    // Inference
//	    out, err := net.Query([]float64{0.1, 0.2, 0.3})
//	}
//
// # Errors
//
// New fails with ErrInvalidArgument for non-positive node counts or learning
// rate. Query and Train fail with ErrDimensionMismatch when a vector length
// disagrees with the configured node counts. Test with errors.Is.
//
// # Concurrency
//
// A Network has one owner. Query does not write, but Train mutates the
// weights in place, so concurrent Train calls (or Train alongside Query)
// need external synchronization.
package nn
