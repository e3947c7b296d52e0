// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops exposes the differentiable operations layers are built from.
//
// Custom layers can be assembled from these operations with nn.NewLayer and
// a Builder:
//
//	type affine struct{}
//
//	func (affine) Build(x *mat.Dense, neurons int) ([]ops.Operation, error) {
//	    _, features := x.Dims()
//	    bias, err := ops.NewBiasAdd(tensor.Zeros(1, neurons))
//	    if err != nil {
//	        return nil, err
//	    }
//	    return []ops.Operation{ops.NewWeightMultiply(tensor.Zeros(features, neurons)), bias}, nil
//	}
package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/ops"
)

// Operation is a single differentiable forward/backward step.
type Operation = ops.Operation

// ParamOperation is an Operation owning a learnable parameter.
type ParamOperation = ops.ParamOperation

// Kernel holds the math of a parameterless operation.
type Kernel = ops.Kernel

// ParamKernel holds the math of a parameterized operation.
type ParamKernel = ops.ParamKernel

// Op drives a Kernel through the forward/backward shape contract.
type Op = ops.Op

// ParamOp drives a ParamKernel bound to its parameter.
type ParamOp = ops.ParamOp

// New creates an operation from a kernel.
func New(name string, kernel Kernel) *Op {
	return ops.New(name, kernel)
}

// NewParam creates a parameterized operation from a kernel and its parameter.
func NewParam(name string, param *mat.Dense, kernel ParamKernel) *ParamOp {
	return ops.NewParam(name, param, kernel)
}

// NewWeightMultiply creates X @ W with W shaped [in_features, out_features].
func NewWeightMultiply(weight *mat.Dense) *ParamOp {
	return ops.NewWeightMultiply(weight)
}

// NewBiasAdd creates X + b; bias must have exactly one row.
func NewBiasAdd(bias *mat.Dense) (*ParamOp, error) {
	return ops.NewBiasAdd(bias)
}

// NewSigmoid creates a logistic activation.
func NewSigmoid() *Op {
	return ops.NewSigmoid()
}

// NewTanh creates a hyperbolic tangent activation.
func NewTanh() *Op {
	return ops.NewTanh()
}

// NewReLU creates a rectified linear activation.
func NewReLU() *Op {
	return ops.NewReLU()
}

// NewIdentity creates an identity activation.
func NewIdentity() *Op {
	return ops.NewIdentity()
}
