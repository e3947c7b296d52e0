// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a batch of 2 rows with 3 features.
type Shape = tensor.Shape

// ShapeMismatchError reports two tensors that were required to share a shape.
type ShapeMismatchError = tensor.ShapeMismatchError

// Sentinel errors.
var (
	ErrNotImplemented        = tensor.ErrNotImplemented
	ErrBackwardBeforeForward = tensor.ErrBackwardBeforeForward
)

// ShapeOf returns the shape of m as {rows, cols}.
func ShapeOf(m mat.Matrix) Shape {
	return tensor.ShapeOf(m)
}

// IsShapeMismatch reports whether err wraps a *ShapeMismatchError and returns it.
//
// Example:
//
//	if sm, ok := tensor.IsShapeMismatch(err); ok {
//	    log.Printf("expected %v, got %v", sm.Expected, sm.Actual)
//	}
func IsShapeMismatch(err error) (*ShapeMismatchError, bool) {
	return tensor.IsShapeMismatch(err)
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *mat.Dense {
	return tensor.Zeros(rows, cols)
}

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int) *mat.Dense {
	return tensor.Ones(rows, cols)
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64) *mat.Dense {
	return tensor.Full(rows, cols, value)
}

// FromSlice creates a matrix from row-major data without copying it.
func FromSlice(data []float64, shape Shape) (*mat.Dense, error) {
	return tensor.FromSlice(data, shape)
}

// NewSource returns a random source; seed 0 means not reproducible.
func NewSource(seed uint64) *rand.Rand {
	return tensor.NewSource(seed)
}

// Randn creates a rows×cols matrix with values drawn from N(0, 1).
func Randn(rows, cols int, src *rand.Rand) *mat.Dense {
	return tensor.Randn(rows, cols, src)
}
