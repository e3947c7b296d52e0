// Copyright 2025 The DLFS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update layer parameters in place.
//
// # Optimizers
//
//   - SGD: param -= lr * grad, with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//
// # Basic Usage
//
//	sgd := optim.NewSGD([]optim.ParamSource{model}, optim.SGDConfig{LR: 0.05})
//
//	// after model.Backward(...)
//	if err := sgd.Step(); err != nil {
//	    return err
//	}
package optim
