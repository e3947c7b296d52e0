// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - Base: learning-rate holder whose Step is not implemented
//   - SGD: plain gradient descent, with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read parameters and gradients from ParamSources (layers or
// containers) and mutate the parameters in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD([]optim.ParamSource{model}, optim.SGDConfig{
//	    LR: 0.01,
//	})
//
//	prediction, _ := model.Forward(x)
//	_, _ = loss.Forward(prediction, y)
//	grad, _ := loss.Backward()
//	_, _ = model.Backward(grad)
//	err := optimizer.Step()
package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// ErrGradientMismatch is returned when a source reports a different number
// of gradients than parameters, e.g. before its first backward pass.
var ErrGradientMismatch = errors.New("parameter and gradient counts differ")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter reachable from the
	// optimizer's sources, using the gradients of their last backward pass.
	Step() error

	// LR returns the current learning rate.
	LR() float64
}

// ParamSource exposes parameters and matching gradients. *nn.Layer and
// *nn.Sequential satisfy it.
type ParamSource interface {
	Params() []*mat.Dense
	ParamGrads() []*mat.Dense
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate (default: 0.01)
}

// Base holds the learning rate shared by every optimizer.
//
// Base itself does not know how to update parameters: Step returns
// tensor.ErrNotImplemented. Concrete optimizers embed it and override Step.
type Base struct {
	lr float64
}

// NewBase creates a Base from config.
func NewBase(config Config) *Base {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &Base{lr: config.LR}
}

// Step always fails with tensor.ErrNotImplemented.
func (b *Base) Step() error {
	return errors.Wrap(tensor.ErrNotImplemented, "Optimizer.Step")
}

// LR returns the current learning rate.
func (b *Base) LR() float64 {
	return b.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (b *Base) SetLR(lr float64) {
	b.lr = lr
}

// pair is a parameter and the gradient it is updated with.
type pair struct {
	param *mat.Dense
	grad  *mat.Dense
}

// collect validates every source and returns its (param, grad) pairs.
//
// Nothing is returned unless all sources are consistent, so a failing Step
// leaves every parameter untouched.
func collect(op string, sources []ParamSource) ([]pair, error) {
	var pairs []pair
	for i, src := range sources {
		params, grads := src.Params(), src.ParamGrads()
		if len(params) != len(grads) {
			return nil, errors.Wrapf(ErrGradientMismatch, "%s: source %d has %d params and %d grads",
				op, i, len(params), len(grads))
		}
		for j, param := range params {
			if err := tensor.CheckSameShape(op+": param grad", param, grads[j]); err != nil {
				return nil, errors.Wrapf(err, "source %d param %d", i, j)
			}
			pairs = append(pairs, pair{param: param, grad: grads[j]})
		}
	}
	return pairs, nil
}
