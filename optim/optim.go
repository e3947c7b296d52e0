// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/namdori61/DLFS/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ParamSource exposes parameters and gradients; layers and containers satisfy it.
type ParamSource = optim.ParamSource

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Base holds a learning rate; its Step is not implemented.
type Base = optim.Base

// ErrGradientMismatch is returned when parameter and gradient counts differ.
var ErrGradientMismatch = optim.ErrGradientMismatch

// NewBase creates a Base optimizer.
func NewBase(config Config) *Base {
	return optim.NewBase(config)
}

// SGD represents the gradient descent optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	layer := nn.NewDense(10, nn.DenseConfig{})
//	optimizer := optim.NewSGD(
//	    []optim.ParamSource{layer},
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(sources []ParamSource, config SGDConfig) *SGD {
	return optim.NewSGD(sources, config)
}

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(sources []ParamSource, config AdamConfig) *Adam {
	return optim.NewAdam(sources, config)
}
