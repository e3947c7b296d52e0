// Package nn implements the layers, losses and containers of the DLFS library.
//
// This package provides building blocks for constructing feed-forward networks:
//   - Module interface: forward/backward unit exposing parameters and gradients
//   - Layer: ordered pipeline of operations, set up lazily on its first input
//   - Dense: fully connected layer (WeightMultiply, BiasAdd, activation)
//   - Loss: terminal computation producing a scalar and a prediction gradient
//   - MeanSquaredError: squared error normalized by batch size
//   - SoftmaxCrossEntropy: cross-entropy over softmax of raw logits
//   - Sequential: container for stacking modules
//
// Gradients are hand-derived per operation (see package ops); there is no tape.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Module is the base interface for trainable network components.
//
// Modules can be composed to build deeper networks:
//
//	model := nn.NewSequential(
//	    nn.NewDense(16, nn.DenseConfig{}),
//	    nn.NewDense(1, nn.DenseConfig{Activation: nn.Linear}),
//	)
type Module interface {
	// Forward computes the output of the module given an input batch
	// shaped [batch_size, features].
	Forward(input *mat.Dense) (*mat.Dense, error)

	// Backward takes the gradient with respect to the last output and
	// returns the gradient with respect to the last input.
	Backward(outputGrad *mat.Dense) (*mat.Dense, error)

	// Params returns all trainable parameters, in forward order.
	// Optimizers update them in place.
	Params() []*mat.Dense

	// ParamGrads returns the gradients of the last Backward call, in the
	// same order as Params.
	ParamGrads() []*mat.Dense
}
