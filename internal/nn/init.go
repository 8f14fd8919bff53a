package nn

import (
	"math"

	"github.com/born-ml/overtake/internal/random"
	"github.com/born-ml/overtake/internal/tensor"
)

// LeCunNormal initializes a weight matrix from N(0, 1/sqrt(fanIn)).
//
// Scaling the spread by the inverse square root of the input dimension keeps
// the initial pre-activations of order one, away from sigmoid saturation.
//
// Parameters:
//   - fanIn: Number of input units feeding each row
//   - shape: Shape of the weight matrix [out, in]
//   - rng: Source of randomness
//
// Returns a matrix initialized from the scaled normal distribution.
func LeCunNormal(fanIn int, shape tensor.Shape, rng *random.Source) *tensor.Matrix {
	sd := 1 / math.Sqrt(float64(fanIn))

	m, err := tensor.NewMatrix(shape, nil)
	if err != nil {
		panic(err)
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			m.Set(i, j, rng.Normal(0, sd))
		}
	}
	return m
}
