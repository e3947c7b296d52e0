// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shape and error vocabulary of DLFS tensors.
//
// Tensors are gonum dense matrices (*mat.Dense, float64, row-major) shaped
// [batch_size, features]. This package adds:
//   - Shape and ShapeOf: shape introspection and comparison
//   - ShapeMismatchError: the typed error returned by every shape contract
//   - ErrNotImplemented, ErrBackwardBeforeForward: sentinel errors
//   - Creation helpers: Zeros, Ones, Full, FromSlice, Randn
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tensor.ShapeOf(x)) // (2, 2)
package tensor
