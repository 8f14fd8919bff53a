package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/overtake/internal/random"
	"github.com/born-ml/overtake/internal/tensor"
)

func TestLinearShapes(t *testing.T) {
	layer := NewLinear("hidden", 3, 5, random.New(0))

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())
	assert.True(t, tensor.Shape{5, 3}.Equal(layer.Weight().Shape()))
	assert.Equal(t, "hidden.weight", layer.Weight().Name())
	assert.Len(t, layer.Parameters(), 1)

	out, err := layer.Forward([]float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.Len(t, out, 5)

	back, err := layer.Backward([]float64{1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Len(t, back, 3)
}

func TestLinearDimensionChecks(t *testing.T) {
	layer := NewLinear("output", 5, 2, random.New(0))

	_, err := layer.Forward([]float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = layer.Backward([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = layer.Gradient([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestLinearGradient(t *testing.T) {
	layer := NewLinear("l", 2, 1, random.New(0))

	grad, err := layer.Gradient([]float64{0.5}, []float64{2, -4})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, grad.Data())
}

func TestLeCunNormalSpread(t *testing.T) {
	const fanIn = 400
	m := LeCunNormal(fanIn, tensor.Shape{50, fanIn}, random.New(11))

	data := m.Data()
	var mean, sq float64
	for _, v := range data {
		mean += v
		sq += v * v
	}
	mean /= float64(len(data))
	sd := math.Sqrt(sq/float64(len(data)) - mean*mean)

	assert.InDelta(t, 0, mean, 0.01)
	assert.InDelta(t, 1/math.Sqrt(fanIn), sd, 0.005)
}

func TestParameterMatrixIsLive(t *testing.T) {
	m := tensor.Zeros(1, 2)
	p := NewParameter("w", m)

	p.Matrix().Set(0, 1, 3)
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, "w", p.Name())
}
