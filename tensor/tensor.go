// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/overtake/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a matrix.
// Example: Shape{2, 3} is a 2×3 matrix.
type Shape = tensor.Shape

// Matrix is a dense row-major float64 matrix.
type Matrix = tensor.Matrix

// Errors.
var (
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrInvalidShape      = tensor.ErrInvalidShape
)

// Creation functions

// NewMatrix creates a matrix of the given 2D shape, copying data (nil for zeros).
func NewMatrix(shape Shape, data []float64) (*Matrix, error) {
	return tensor.NewMatrix(shape, data)
}

// Zeros creates a rows×cols zero matrix.
func Zeros(rows, cols int) *Matrix {
	return tensor.Zeros(rows, cols)
}

// Operations

// Dot computes m·v.
func Dot(m *Matrix, v []float64) ([]float64, error) { return tensor.Dot(m, v) }

// TransposeDot computes mᵀ·v.
func TransposeDot(m *Matrix, v []float64) ([]float64, error) { return tensor.TransposeDot(m, v) }

// Apply maps f over v into a new slice.
func Apply(v []float64, f func(float64) float64) []float64 { return tensor.Apply(v, f) }

// Outer computes a⊗b.
func Outer(a, b []float64) (*Matrix, error) { return tensor.Outer(a, b) }

// AddInPlace performs a += b.
func AddInPlace(a, b *Matrix) error { return tensor.AddInPlace(a, b) }

// Scale returns s·m.
func Scale(m *Matrix, s float64) *Matrix { return tensor.Scale(m, s) }
