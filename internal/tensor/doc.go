// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense matrix and vector primitives used by the
// network.
//
// # Overview
//
// Matrices are flat row-major float64 buffers with an explicit Shape.
// Vectors are plain []float64. Dimension agreement is checked at runtime and
// reported as ErrDimensionMismatch, because layer sizes are configuration
// rather than compile-time constants.
//
// The products are computed through gonum (mat for matrix-vector products,
// floats for elementwise work).
//
// # Basic Usage
//
//	w := tensor.Zeros(2, 3)
//	y, err := tensor.Dot(w, []float64{1, 2, 3})      // len(y) == 2
//	g, err := tensor.TransposeDot(w, []float64{1, 1}) // len(g) == 3
//
// # Mutation
//
// Every function returns fresh storage except AddInPlace, which updates its
// first argument.
package tensor
