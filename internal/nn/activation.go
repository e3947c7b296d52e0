package nn

import (
	"github.com/namdori61/DLFS/internal/ops"
)

// Activation factories for DenseConfig.Activation. Each call returns a new
// operation instance.

// Sigmoid returns a new logistic activation: σ(x) = 1 / (1 + exp(-x)).
func Sigmoid() ops.Operation {
	return ops.NewSigmoid()
}

// Tanh returns a new hyperbolic tangent activation.
func Tanh() ops.Operation {
	return ops.NewTanh()
}

// ReLU returns a new rectified linear activation: f(x) = max(0, x).
func ReLU() ops.Operation {
	return ops.NewReLU()
}

// Linear returns a new identity activation, for unbounded regression outputs.
func Linear() ops.Operation {
	return ops.NewIdentity()
}
