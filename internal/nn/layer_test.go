package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/nn"
	"github.com/namdori61/DLFS/internal/ops"
	"github.com/namdori61/DLFS/internal/tensor"
)

// countingBuilder records how often Build runs.
type countingBuilder struct {
	calls int
}

func (b *countingBuilder) Build(input *mat.Dense, neurons int) ([]ops.Operation, error) {
	b.calls++
	_, features := input.Dims()
	return []ops.Operation{
		ops.NewWeightMultiply(tensor.Ones(features, neurons)),
		ops.NewTanh(),
	}, nil
}

func TestLayer_Lifecycle(t *testing.T) {
	builder := &countingBuilder{}
	layer := nn.NewLayer("Counting", 2, builder)

	assert.Equal(t, nn.Uninitialized, layer.State())
	assert.Empty(t, layer.Operations())
	assert.Empty(t, layer.Params())

	for i := 0; i < 3; i++ {
		_, err := layer.Forward(tensor.Ones(4, 3))
		require.NoError(t, err)
	}

	assert.Equal(t, nn.Initialized, layer.State())
	assert.Equal(t, "initialized", layer.State().String())
	assert.Equal(t, 1, builder.calls, "setup runs once")
	assert.Len(t, layer.Operations(), 2)
	assert.Equal(t, 2, layer.Neurons())
}

func TestLayer_NoBuilderNotImplemented(t *testing.T) {
	layer := nn.NewLayer("Abstract", 3, nil)

	_, err := layer.Forward(tensor.Ones(1, 1))
	assert.ErrorIs(t, err, tensor.ErrNotImplemented)
	assert.Equal(t, nn.Uninitialized, layer.State())
}

func TestLayer_BackwardBeforeForward(t *testing.T) {
	layer := nn.NewDense(2, nn.DenseConfig{})

	_, err := layer.Backward(tensor.Ones(1, 2))
	assert.ErrorIs(t, err, tensor.ErrBackwardBeforeForward)
}

func TestLayer_BackwardShapeMismatch(t *testing.T) {
	layer := nn.NewDense(2, nn.DenseConfig{Seed: 3})
	_, err := layer.Forward(tensor.Ones(5, 4))
	require.NoError(t, err)

	_, err = layer.Backward(tensor.Ones(5, 3))
	sm, ok := tensor.IsShapeMismatch(err)
	require.True(t, ok)
	assert.Equal(t, tensor.Shape{5, 2}, sm.Expected)
	assert.Equal(t, tensor.Shape{5, 3}, sm.Actual)
}

func TestLayer_ParamsFilteredByCapability(t *testing.T) {
	layer := nn.NewLayer("Counting", 2, &countingBuilder{})
	x := tensor.Ones(3, 4)

	_, err := layer.Forward(x)
	require.NoError(t, err)
	params := layer.Params()
	require.Len(t, params, 1, "the tanh activation owns no parameter")
	assert.Equal(t, tensor.Shape{4, 2}, tensor.ShapeOf(params[0]))

	inputGrad, err := layer.Backward(tensor.Ones(3, 2))
	require.NoError(t, err)
	assert.Equal(t, tensor.ShapeOf(x), tensor.ShapeOf(inputGrad))

	grads := layer.ParamGrads()
	require.Len(t, grads, 1)
	assert.Equal(t, tensor.ShapeOf(params[0]), tensor.ShapeOf(grads[0]))
}

func TestLayer_ParamGradsRebuiltEachBackward(t *testing.T) {
	layer := nn.NewDense(2, nn.DenseConfig{Seed: 9})
	x := tensor.Ones(2, 3)

	_, err := layer.Forward(x)
	require.NoError(t, err)
	_, err = layer.Backward(tensor.Ones(2, 2))
	require.NoError(t, err)
	first := layer.ParamGrads()

	_, err = layer.Forward(x)
	require.NoError(t, err)
	_, err = layer.Backward(tensor.Full(2, 2, 2))
	require.NoError(t, err)
	second := layer.ParamGrads()

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotSame(t, first[1], second[1])

	var doubled mat.Dense
	doubled.Scale(2, first[1])
	assert.True(t, mat.EqualApprox(&doubled, second[1], 1e-12), "gradients are recomputed, not accumulated")
}
