package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dot computes the matrix-vector product m·v.
//
// Returns ErrDimensionMismatch if m.Cols() != len(v).
func Dot(m *Matrix, v []float64) ([]float64, error) {
	if m.Cols() != len(v) {
		return nil, mismatch("Dot", "matrix %v, vector length %d", m.shape, len(v))
	}

	out := make([]float64, m.Rows())
	mat.NewVecDense(len(out), out).MulVec(m.dense(), mat.NewVecDense(len(v), v))
	return out, nil
}

// TransposeDot computes mᵀ·v without materializing the transpose.
//
// This is how an error signal is propagated backward through a weight
// matrix. Returns ErrDimensionMismatch if m.Rows() != len(v).
func TransposeDot(m *Matrix, v []float64) ([]float64, error) {
	if m.Rows() != len(v) {
		return nil, mismatch("TransposeDot", "matrix %v, vector length %d", m.shape, len(v))
	}

	out := make([]float64, m.Cols())
	mat.NewVecDense(len(out), out).MulVec(m.dense().T(), mat.NewVecDense(len(v), v))
	return out, nil
}

// Apply returns a new vector with f applied to every element of v.
func Apply(v []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}

// Outer computes the outer product a⊗b with shape len(a)×len(b).
func Outer(a, b []float64) (*Matrix, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "Outer: empty operand (%d, %d)", len(a), len(b))
	}

	cols := len(b)
	data := make([]float64, len(a)*cols)
	for i, ai := range a {
		floats.ScaleTo(data[i*cols:(i+1)*cols], ai, b)
	}
	return &Matrix{shape: Shape{len(a), cols}, data: data}, nil
}

// AddInPlace performs a += b. Shapes must match exactly.
//
// This is the only operation in the package that mutates an argument.
func AddInPlace(a, b *Matrix) error {
	if !a.shape.Equal(b.shape) {
		return mismatch("AddInPlace", "%v vs %v", a.shape, b.shape)
	}
	floats.Add(a.data, b.data)
	return nil
}

// Scale returns a new matrix equal to s·m.
func Scale(m *Matrix, s float64) *Matrix {
	out := m.Clone()
	floats.Scale(s, out.data)
	return out
}

// Sub returns a-b elementwise.
func Sub(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, mismatch("Sub", "lengths %d and %d", len(a), len(b))
	}
	return floats.SubTo(make([]float64, len(a)), a, b), nil
}

// Mul returns the Hadamard (elementwise) product a⊙b.
func Mul(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, mismatch("Mul", "lengths %d and %d", len(a), len(b))
	}
	return floats.MulTo(make([]float64, len(a)), a, b), nil
}
