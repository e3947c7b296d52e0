package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/ops"
	"github.com/namdori61/DLFS/internal/tensor"
)

// DenseConfig holds configuration for a Dense layer.
type DenseConfig struct {
	// Activation creates the layer's activation operation. It is called once
	// per layer, so layers never share an instance. Default: Sigmoid.
	Activation func() ops.Operation

	// Seed fixes parameter initialization. Default 0: no fixed seed.
	Seed uint64

	// WeightInit initializes the weight matrix. Default: StandardNormal.
	WeightInit Initializer
}

// NewDense creates a fully connected layer with neurons outputs.
//
// Performs the transformation: y = activation(x @ W + b)
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, neurons]
//   - b is the bias row with shape [1, neurons]
//
// in_features is taken from the first input passed to Forward.
//
// Example:
//
//	layer := nn.NewDense(128, nn.DenseConfig{Seed: 42})
//	output, err := layer.Forward(input) // [32, 784] -> [32, 128]
func NewDense(neurons int, config DenseConfig) *Layer {
	if config.Activation == nil {
		config.Activation = Sigmoid
	}
	if config.WeightInit == nil {
		config.WeightInit = StandardNormal
	}
	return NewLayer("Dense", neurons, &denseBuilder{config: config})
}

type denseBuilder struct {
	config DenseConfig
}

// Build sizes W and b from the first input and returns
// [WeightMultiply(W), BiasAdd(b), activation].
func (d *denseBuilder) Build(input *mat.Dense, neurons int) ([]ops.Operation, error) {
	if neurons <= 0 {
		return nil, errors.Errorf("Dense: neurons must be positive, got %d", neurons)
	}
	_, features := input.Dims()

	src := tensor.NewSource(d.config.Seed)
	weight := d.config.WeightInit(features, neurons, src)
	bias := tensor.Randn(1, neurons, src)

	biasAdd, err := ops.NewBiasAdd(bias)
	if err != nil {
		return nil, err
	}

	activation := d.config.Activation()
	if activation == nil {
		return nil, errors.New("Dense: activation factory returned nil")
	}

	return []ops.Operation{
		ops.NewWeightMultiply(weight),
		biasAdd,
		activation,
	}, nil
}
