// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the dense matrix type and the linear algebra
// helpers used by the network.
//
// Example:
//
//	m, err := tensor.NewMatrix(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	y, err := tensor.Dot(m, []float64{1, 0, -1}) // [-2, -2]
package tensor
