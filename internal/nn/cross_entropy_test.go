package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/nn"
)

func TestSoftmaxCrossEntropy_Uniform(t *testing.T) {
	loss := nn.NewSoftmaxCrossEntropy()
	prediction := mat.NewDense(2, 4, nil) // equal logits: p = 1/4 everywhere
	target := mat.NewDense(2, 4, []float64{
		1, 0, 0, 0,
		0, 0, 1, 0,
	})

	value, err := loss.Forward(prediction, target)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), value, 1e-12)

	grad, err := loss.Backward()
	require.NoError(t, err)
	assert.InDelta(t, (0.25-1)/2, grad.At(0, 0), 1e-12)
	assert.InDelta(t, 0.25/2, grad.At(0, 1), 1e-12)
}

func TestSoftmaxCrossEntropy_LargeLogitsStable(t *testing.T) {
	loss := nn.NewSoftmaxCrossEntropy()
	prediction := mat.NewDense(1, 2, []float64{1000, 0})
	target := mat.NewDense(1, 2, []float64{1, 0})

	value, err := loss.Forward(prediction, target)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(value))
	assert.InDelta(t, 0, value, 1e-12)

	grad, err := loss.Backward()
	require.NoError(t, err)
	assert.InDelta(t, 0, grad.At(0, 0), 1e-12)
	assert.InDelta(t, 0, grad.At(0, 1), 1e-12)
}

func TestSoftmaxCrossEntropy_GradientCheck(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 0.1,
		0.1, 1,
	})
	y := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 0,
		0, 1,
	})

	layer := nn.NewDense(2, nn.DenseConfig{Activation: nn.Linear, Seed: 8})
	checkParamGradsWith(t, layer, nn.NewSoftmaxCrossEntropy, x, y)
}
