package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input on Forward; Backward
// walks the modules in reverse.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(16, nn.DenseConfig{}),
//	    nn.NewDense(1, nn.DenseConfig{}),
//	)
//
//	output, err := model.Forward(input)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *mat.Dense) (*mat.Dense, error) {
	output := input
	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, errors.Wrapf(err, "Sequential.Forward: module %d", i)
		}
	}
	return output, nil
}

// Backward propagates outputGrad through all modules in reverse order.
func (s *Sequential) Backward(outputGrad *mat.Dense) (*mat.Dense, error) {
	grad := outputGrad
	for i := len(s.modules) - 1; i >= 0; i-- {
		var err error
		grad, err = s.modules[i].Backward(grad)
		if err != nil {
			return nil, errors.Wrapf(err, "Sequential.Backward: module %d", i)
		}
	}
	return grad, nil
}

// Params returns all trainable parameters from all modules, in module order.
func (s *Sequential) Params() []*mat.Dense {
	var params []*mat.Dense
	for _, module := range s.modules {
		params = append(params, module.Params()...)
	}
	return params
}

// ParamGrads returns all parameter gradients, in the same order as Params.
func (s *Sequential) ParamGrads() []*mat.Dense {
	var grads []*mat.Dense
	for _, module := range s.modules {
		grads = append(grads, module.ParamGrads()...)
	}
	return grads
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
