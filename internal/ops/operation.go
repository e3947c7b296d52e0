// Package ops defines the differentiable operations that layers are built from.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: stores the input and computes the output
//   - Backward pass: computes the input gradient given the output gradient
//
// Operations that own a learnable parameter additionally implement
// ParamOperation and retain the parameter gradient of their last backward pass.
//
// Supported operations:
//   - WeightMultiply: X @ W (dX = G @ W^T, dW = X^T @ G)
//   - BiasAdd: X + b broadcast over rows (dX = G, db = column sums of G)
//   - Sigmoid, Tanh, ReLU, Identity: element-wise activations
//
// The shape contract is enforced here, not in the kernels: the output gradient
// must match the last output, the input gradient must match the last input,
// and the parameter gradient must match the parameter.
package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// Operation is a single differentiable step of a layer.
//
// Instances are stateful: Forward overwrites the stored input and output,
// Backward must follow a Forward on the same instance.
type Operation interface {
	// Forward computes and stores the output for input.
	Forward(input *mat.Dense) (*mat.Dense, error)

	// Backward computes the gradient of the loss with respect to the last
	// input, given the gradient with respect to the last output.
	Backward(outputGrad *mat.Dense) (*mat.Dense, error)
}

// ParamOperation is the capability of an Operation that owns a parameter.
//
// Layers collect parameters and gradients from every operation exposing this
// capability, in forward order.
type ParamOperation interface {
	Operation

	// Param returns the owned parameter. Optimizers mutate it in place.
	Param() *mat.Dense

	// ParamGrad returns the parameter gradient of the last Backward call,
	// or nil before the first one.
	ParamGrad() *mat.Dense
}

// Kernel holds the operation-specific math of a parameterless operation.
type Kernel interface {
	Output(input *mat.Dense) (*mat.Dense, error)
	InputGrad(input, output, outputGrad *mat.Dense) *mat.Dense
}

// ParamKernel holds the operation-specific math of a parameterized operation.
type ParamKernel interface {
	Output(input, param *mat.Dense) (*mat.Dense, error)
	InputGrad(input, output, param, outputGrad *mat.Dense) *mat.Dense
	ParamGrad(input, param, outputGrad *mat.Dense) *mat.Dense
}

// Op drives a Kernel through the forward/backward contract.
//
// The zero value has no kernel and fails every call with
// tensor.ErrNotImplemented.
type Op struct {
	name      string
	kernel    Kernel
	input     *mat.Dense
	output    *mat.Dense
	inputGrad *mat.Dense
}

// New creates an operation named name that computes with kernel.
func New(name string, kernel Kernel) *Op {
	return &Op{name: name, kernel: kernel}
}

// Name returns the operation name used in error messages.
func (o *Op) Name() string {
	if o.name == "" {
		return "Operation"
	}
	return o.name
}

// Forward stores input, computes the output through the kernel and returns it.
func (o *Op) Forward(input *mat.Dense) (*mat.Dense, error) {
	if o.kernel == nil {
		return nil, errors.Wrapf(tensor.ErrNotImplemented, "%s.Forward", o.Name())
	}

	output, err := o.kernel.Output(input)
	if err != nil {
		return nil, err
	}

	o.input = input
	o.output = output
	return output, nil
}

// Backward checks outputGrad against the last output, computes the input
// gradient and checks it against the last input.
func (o *Op) Backward(outputGrad *mat.Dense) (*mat.Dense, error) {
	if o.kernel == nil {
		return nil, errors.Wrapf(tensor.ErrNotImplemented, "%s.Backward", o.Name())
	}
	if o.output == nil {
		return nil, errors.Wrapf(tensor.ErrBackwardBeforeForward, "%s.Backward", o.Name())
	}
	if err := tensor.CheckSameShape(o.Name()+".Backward: output grad", o.output, outputGrad); err != nil {
		return nil, err
	}

	inputGrad := o.kernel.InputGrad(o.input, o.output, outputGrad)
	if err := tensor.CheckSameShape(o.Name()+".Backward: input grad", o.input, inputGrad); err != nil {
		return nil, err
	}

	o.inputGrad = inputGrad
	return inputGrad, nil
}

// Input returns the input of the last Forward call.
func (o *Op) Input() *mat.Dense {
	return o.input
}

// Output returns the output of the last Forward call.
func (o *Op) Output() *mat.Dense {
	return o.output
}

// InputGrad returns the input gradient of the last Backward call.
func (o *Op) InputGrad() *mat.Dense {
	return o.inputGrad
}

// ParamOp drives a ParamKernel bound to an owned parameter.
//
// The zero value has no kernel and fails every call with
// tensor.ErrNotImplemented.
type ParamOp struct {
	Op
	kernel    ParamKernel
	param     *mat.Dense
	paramGrad *mat.Dense
}

// NewParam creates a parameterized operation owning param.
func NewParam(name string, param *mat.Dense, kernel ParamKernel) *ParamOp {
	p := &ParamOp{
		Op:     Op{name: name},
		kernel: kernel,
		param:  param,
	}
	if kernel != nil {
		p.Op.kernel = bound{kernel: kernel, param: param}
	}
	return p
}

// Backward computes the input gradient like Op.Backward, then the parameter
// gradient, which is retained for ParamGrad. Only the input gradient is returned.
func (p *ParamOp) Backward(outputGrad *mat.Dense) (*mat.Dense, error) {
	if p.kernel == nil {
		return nil, errors.Wrapf(tensor.ErrNotImplemented, "%s.Backward", p.Name())
	}

	inputGrad, err := p.Op.Backward(outputGrad)
	if err != nil {
		return nil, err
	}

	paramGrad := p.kernel.ParamGrad(p.input, p.param, outputGrad)
	if err := tensor.CheckSameShape(p.Name()+".Backward: param grad", p.param, paramGrad); err != nil {
		return nil, err
	}

	p.paramGrad = paramGrad
	return inputGrad, nil
}

// Param returns the owned parameter.
func (p *ParamOp) Param() *mat.Dense {
	return p.param
}

// ParamGrad returns the parameter gradient of the last Backward call.
func (p *ParamOp) ParamGrad() *mat.Dense {
	return p.paramGrad
}

// bound adapts a ParamKernel and its parameter to the Kernel interface.
type bound struct {
	kernel ParamKernel
	param  *mat.Dense
}

func (b bound) Output(input *mat.Dense) (*mat.Dense, error) {
	return b.kernel.Output(input, b.param)
}

func (b bound) InputGrad(input, output, outputGrad *mat.Dense) *mat.Dense {
	return b.kernel.InputGrad(input, output, b.param, outputGrad)
}
