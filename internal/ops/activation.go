package ops

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// The derivative is computed from the stored output:
// dX = σ(x) * (1 - σ(x)) * G.
type Sigmoid struct{}

// NewSigmoid creates a new sigmoid operation.
func NewSigmoid() *Op {
	return New("Sigmoid", Sigmoid{})
}

// Output applies σ element-wise.
func (Sigmoid) Output(input *mat.Dense) (*mat.Dense, error) {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	}, input)
	return &out, nil
}

// InputGrad computes output * (1 - output) * outputGrad.
func (Sigmoid) InputGrad(_, output, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Apply(func(i, j int, g float64) float64 {
		s := output.At(i, j)
		return s * (1.0 - s) * g
	}, outputGrad)
	return &grad
}

// Tanh is the hyperbolic tangent activation.
//
// dX = (1 - tanh(x)^2) * G, from the stored output.
type Tanh struct{}

// NewTanh creates a new tanh operation.
func NewTanh() *Op {
	return New("Tanh", Tanh{})
}

// Output applies tanh element-wise.
func (Tanh) Output(input *mat.Dense) (*mat.Dense, error) {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Tanh(v)
	}, input)
	return &out, nil
}

// InputGrad computes (1 - output^2) * outputGrad.
func (Tanh) InputGrad(_, output, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Apply(func(i, j int, g float64) float64 {
		t := output.At(i, j)
		return (1.0 - t*t) * g
	}, outputGrad)
	return &grad
}

// ReLU is the rectified linear activation: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU operation.
func NewReLU() *Op {
	return New("ReLU", ReLU{})
}

// Output applies max(0, x) element-wise.
func (ReLU) Output(input *mat.Dense) (*mat.Dense, error) {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return math.Max(0, v)
	}, input)
	return &out, nil
}

// InputGrad passes the gradient where the input was positive.
func (ReLU) InputGrad(input, _, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Apply(func(i, j int, g float64) float64 {
		if input.At(i, j) > 0 {
			return g
		}
		return 0
	}, outputGrad)
	return &grad
}

// Identity is the linear activation f(x) = x, for regression outputs.
type Identity struct{}

// NewIdentity creates a new identity operation.
func NewIdentity() *Op {
	return New("Identity", Identity{})
}

// Output returns a copy of input.
func (Identity) Output(input *mat.Dense) (*mat.Dense, error) {
	return mat.DenseCopyOf(input), nil
}

// InputGrad returns a copy of outputGrad.
func (Identity) InputGrad(_, _, outputGrad *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(outputGrad)
}
