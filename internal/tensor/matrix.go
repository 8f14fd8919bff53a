package tensor

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major 2D array of float64 values.
//
// The shape is fixed at creation. Element (i, j) lives at data[i*cols+j].
// gonum views created by the linear algebra helpers share this storage.
type Matrix struct {
	shape Shape
	data  []float64
}

// NewMatrix creates a matrix of the given 2D shape.
//
// If data is nil the matrix is zero-filled, otherwise data is copied and must
// hold exactly rows*cols values.
func NewMatrix(shape Shape, data []float64) (*Matrix, error) {
	if len(shape) != 2 {
		return nil, errors.Wrapf(ErrInvalidShape, "matrix needs 2 dimensions, got %d", len(shape))
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n := shape.NumElements()
	buf := make([]float64, n)
	if data != nil {
		if len(data) != n {
			return nil, mismatch("NewMatrix", "shape %v needs %d values, got %d", shape, n, len(data))
		}
		copy(buf, data)
	}

	return &Matrix{shape: shape.Clone(), data: buf}, nil
}

// Zeros creates a rows×cols matrix filled with zeros.
//
// Panics if either dimension is not positive.
func Zeros(rows, cols int) *Matrix {
	m, err := NewMatrix(Shape{rows, cols}, nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.shape[0] }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.shape[1] }

// Shape returns a copy of the matrix shape.
func (m *Matrix) Shape() Shape { return m.shape.Clone() }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.shape[1]+j]
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.shape[1]+j] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	cols := m.shape[1]
	out := make([]float64, cols)
	copy(out, m.data[i*cols:(i+1)*cols])
	return out
}

// Data returns a copy of the underlying row-major values.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{shape: m.shape.Clone(), data: m.Data()}
}

// Equal reports whether both matrices have the same shape and bit-identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !m.shape.Equal(other.shape) {
		return false
	}
	return floats.Equal(m.data, other.data)
}

// IsFinite reports whether every element is neither NaN nor ±Inf.
func (m *Matrix) IsFinite() bool {
	if floats.HasNaN(m.data) {
		return false
	}
	for _, v := range m.data {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// dense views the matrix as a gonum Dense sharing the same storage.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.shape[0], m.shape[1], m.data)
}
