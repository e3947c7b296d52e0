package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/nn"
)

// regressionBatch returns a fixed batch with a smooth target.
func regressionBatch(t *testing.T) (*mat.Dense, *mat.Dense) {
	t.Helper()
	x := mat.NewDense(4, 2, []float64{
		0.1, -0.4,
		0.7, 0.2,
		-0.5, 0.9,
		0.3, 0.3,
	})
	y := mat.NewDense(4, 1, []float64{0.2, 0.8, 0.4, 0.6})
	return x, y
}

// lossOf runs a forward pass and returns the loss against y.
func lossOf(t *testing.T, model nn.Module, newLoss func() *nn.Loss, x, y *mat.Dense) float64 {
	t.Helper()
	prediction, err := model.Forward(x)
	require.NoError(t, err)
	value, err := newLoss().Forward(prediction, y)
	require.NoError(t, err)
	return value
}

// backprop runs forward, MSE and backward, returning the loss value.
func backprop(t *testing.T, model nn.Module, x, y *mat.Dense) float64 {
	t.Helper()
	return backpropWith(t, model, nn.NewMeanSquaredError(), x, y)
}

func backpropWith(t *testing.T, model nn.Module, loss *nn.Loss, x, y *mat.Dense) float64 {
	t.Helper()
	prediction, err := model.Forward(x)
	require.NoError(t, err)
	value, err := loss.Forward(prediction, y)
	require.NoError(t, err)
	grad, err := loss.Backward()
	require.NoError(t, err)
	_, err = model.Backward(grad)
	require.NoError(t, err)
	return value
}

// checkParamGrads compares every analytic parameter gradient of model with
// central finite differences of the MSE loss.
func checkParamGrads(t *testing.T, model nn.Module, x, y *mat.Dense) {
	t.Helper()
	checkParamGradsWith(t, model, nn.NewMeanSquaredError, x, y)
}

func checkParamGradsWith(t *testing.T, model nn.Module, newLoss func() *nn.Loss, x, y *mat.Dense) {
	t.Helper()
	backpropWith(t, model, newLoss(), x, y)

	params := model.Params()
	grads := model.ParamGrads()
	require.Len(t, grads, len(params))

	for i, param := range params {
		analytic := mat.DenseCopyOf(grads[i])
		raw := param.RawMatrix()
		original := append([]float64(nil), raw.Data...)

		numeric := fd.Gradient(nil, func(v []float64) float64 {
			copy(raw.Data, v)
			return lossOf(t, model, newLoss, x, y)
		}, original, &fd.Settings{Formula: fd.Central, Step: 1e-6})
		copy(raw.Data, original)

		rows, cols := analytic.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				assert.InDelta(t, numeric[r*cols+c], analytic.At(r, c), 1e-5,
					"param %d element (%d, %d)", i, r, c)
			}
		}
	}
}
