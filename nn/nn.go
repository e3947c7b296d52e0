// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/nn"
	"github.com/namdori61/DLFS/internal/ops"
)

// Module is the interface shared by layers and containers.
type Module = nn.Module

// Layer is an ordered pipeline of operations, set up on its first Forward.
type Layer = nn.Layer

// State is the lifecycle state of a Layer.
type State = nn.State

// Lifecycle states.
const (
	Uninitialized = nn.Uninitialized
	Initialized   = nn.Initialized
)

// Builder creates the operation sequence of a layer variant.
type Builder = nn.Builder

// NewLayer creates an uninitialized layer built by builder.
func NewLayer(name string, neurons int, builder Builder) *Layer {
	return nn.NewLayer(name, neurons, builder)
}

// DenseConfig holds configuration for a Dense layer.
type DenseConfig = nn.DenseConfig

// NewDense creates a fully connected layer.
//
// Example:
//
//	layer := nn.NewDense(128, nn.DenseConfig{Activation: nn.Tanh, Seed: 42})
func NewDense(neurons int, config DenseConfig) *Layer {
	return nn.NewDense(neurons, config)
}

// Activations

// Sigmoid returns a new logistic activation.
func Sigmoid() ops.Operation { return nn.Sigmoid() }

// Tanh returns a new hyperbolic tangent activation.
func Tanh() ops.Operation { return nn.Tanh() }

// ReLU returns a new rectified linear activation.
func ReLU() ops.Operation { return nn.ReLU() }

// Linear returns a new identity activation.
func Linear() ops.Operation { return nn.Linear() }

// Initialization

// Initializer creates a fanIn×fanOut weight matrix.
type Initializer = nn.Initializer

// StandardNormal draws every weight from N(0, 1).
func StandardNormal(fanIn, fanOut int, src *rand.Rand) *mat.Dense {
	return nn.StandardNormal(fanIn, fanOut, src)
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier(fanIn, fanOut int, src *rand.Rand) *mat.Dense {
	return nn.Xavier(fanIn, fanOut, src)
}

// Losses

// Loss turns (prediction, target) into a scalar and a prediction gradient.
type Loss = nn.Loss

// LossKernel holds the math of a loss variant.
type LossKernel = nn.LossKernel

// NewLoss creates a loss from a kernel.
func NewLoss(name string, kernel LossKernel) *Loss {
	return nn.NewLoss(name, kernel)
}

// NewMeanSquaredError creates a squared-error loss normalized by batch size.
func NewMeanSquaredError() *Loss {
	return nn.NewMeanSquaredError()
}

// NewSoftmaxCrossEntropy creates a cross-entropy loss over softmax of raw logits.
func NewSoftmaxCrossEntropy() *Loss {
	return nn.NewSoftmaxCrossEntropy()
}

// Containers

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}
