package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/overtake/internal/optim"
	"github.com/born-ml/overtake/internal/tensor"
)

func TestSGD_SimpleUpdate(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	param, err := tensor.NewMatrix(tensor.Shape{1, 2}, []float64{2.0, -1.0})
	require.NoError(t, err)
	grad, err := tensor.NewMatrix(tensor.Shape{1, 2}, []float64{1.0, -2.0})
	require.NoError(t, err)

	require.NoError(t, sgd.Step(param, grad))

	// x_new = x_old - lr * grad
	assert.InDelta(t, 1.9, param.At(0, 0), 1e-12)
	assert.InDelta(t, -0.8, param.At(0, 1), 1e-12)
	assert.Equal(t, []float64{1.0, -2.0}, grad.Data(), "gradient must not change")
}

func TestSGD_ShapeMismatchLeavesParam(t *testing.T) {
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.5})
	require.NoError(t, err)

	param := tensor.Zeros(2, 2)
	grad := tensor.Zeros(1, 4)

	err = sgd.Step(param, grad)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	assert.Equal(t, []float64{0, 0, 0, 0}, param.Data())
}

func TestSGD_InvalidLR(t *testing.T) {
	for _, lr := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := optim.NewSGD(optim.SGDConfig{LR: lr})
		assert.ErrorIs(t, err, optim.ErrInvalidLR, "lr=%v", lr)
	}
}

func TestSGD_GetLR(t *testing.T) {
	var opt optim.Optimizer
	sgd, err := optim.NewSGD(optim.SGDConfig{LR: 0.2})
	require.NoError(t, err)
	opt = sgd

	assert.Equal(t, 0.2, opt.GetLR())
}
