// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Layer (lazily set up pipeline of operations), Dense
//   - Activations: Sigmoid, Tanh, ReLU, Linear (factories for DenseConfig)
//   - Loss functions: MeanSquaredError, SoftmaxCrossEntropy
//   - Utilities: Sequential, Module interface
//   - Initialization: StandardNormal, Xavier
//
// # Basic Usage
//
//	model := nn.NewSequential(
//	    nn.NewDense(8, nn.DenseConfig{Seed: 1}),
//	    nn.NewDense(1, nn.DenseConfig{Activation: nn.Linear, Seed: 2}),
//	)
//	loss := nn.NewMeanSquaredError()
//
//	prediction, err := model.Forward(x)
//	value, err := loss.Forward(prediction, y)
//	grad, err := loss.Backward()
//	_, err = model.Backward(grad)
//
// # Lifecycle
//
// A Layer sizes its parameters from the first input it sees. Later inputs
// with a different feature count fail with a *tensor.ShapeMismatchError.
package nn
