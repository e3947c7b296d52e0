package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/ops"
	"github.com/namdori61/DLFS/internal/tensor"
)

// State is the lifecycle state of a Layer.
type State int

const (
	// Uninitialized layers have no operations or parameters yet.
	Uninitialized State = iota
	// Initialized layers have a fixed operation sequence sized by their first input.
	Initialized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// Builder creates the operation sequence of a layer variant.
//
// Build is called once, on the layer's first Forward, with that first input
// and the layer's output width.
type Builder interface {
	Build(input *mat.Dense, neurons int) ([]ops.Operation, error)
}

// Layer is an ordered pipeline of operations sharing one parameter set.
//
// A Layer starts Uninitialized and moves to Initialized on its first
// successful Forward call. The transition is irreversible: later inputs must
// be compatible with the parameters sized from the first one.
type Layer struct {
	name       string
	neurons    int
	builder    Builder
	state      State
	input      *mat.Dense
	output     *mat.Dense
	operations []ops.Operation
	paramGrads []*mat.Dense
}

// NewLayer creates an uninitialized layer with the given output width.
//
// A nil builder is allowed; such a layer fails its first Forward with
// tensor.ErrNotImplemented.
func NewLayer(name string, neurons int, builder Builder) *Layer {
	return &Layer{
		name:    name,
		neurons: neurons,
		builder: builder,
	}
}

// Forward sets the layer up if needed, then feeds input through every
// operation in order.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, neurons] for Dense.
func (l *Layer) Forward(input *mat.Dense) (*mat.Dense, error) {
	if l.state == Uninitialized {
		if err := l.setup(input); err != nil {
			return nil, err
		}
	}

	output := input
	for _, op := range l.operations {
		var err error
		output, err = op.Forward(output)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.Forward", l.Name())
		}
	}

	l.input = input
	l.output = output
	return output, nil
}

func (l *Layer) setup(input *mat.Dense) error {
	if l.builder == nil {
		return errors.Wrapf(tensor.ErrNotImplemented, "%s.setup", l.Name())
	}

	operations, err := l.builder.Build(input, l.neurons)
	if err != nil {
		return errors.Wrapf(err, "%s.setup", l.Name())
	}

	l.operations = operations
	l.state = Initialized
	return nil
}

// Backward feeds outputGrad through the operations in reverse order, then
// rebuilds the parameter gradients in forward order.
func (l *Layer) Backward(outputGrad *mat.Dense) (*mat.Dense, error) {
	if l.state == Uninitialized || l.output == nil {
		return nil, errors.Wrapf(tensor.ErrBackwardBeforeForward, "%s.Backward", l.Name())
	}
	if err := tensor.CheckSameShape(l.Name()+".Backward: output grad", l.output, outputGrad); err != nil {
		return nil, err
	}

	grad := outputGrad
	for i := len(l.operations) - 1; i >= 0; i-- {
		var err error
		grad, err = l.operations[i].Backward(grad)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.Backward", l.Name())
		}
	}

	paramGrads := make([]*mat.Dense, 0, len(l.paramGrads))
	for _, op := range l.operations {
		if p, ok := op.(ops.ParamOperation); ok {
			paramGrads = append(paramGrads, p.ParamGrad())
		}
	}
	l.paramGrads = paramGrads

	return grad, nil
}

// Params returns the parameters of every operation that owns one, in
// forward order. It is empty before setup.
func (l *Layer) Params() []*mat.Dense {
	var params []*mat.Dense
	for _, op := range l.operations {
		if p, ok := op.(ops.ParamOperation); ok {
			params = append(params, p.Param())
		}
	}
	return params
}

// ParamGrads returns the parameter gradients collected by the last Backward.
func (l *Layer) ParamGrads() []*mat.Dense {
	return l.paramGrads
}

// Name returns the layer name.
func (l *Layer) Name() string {
	if l.name == "" {
		return "Layer"
	}
	return l.name
}

// Neurons returns the output width.
func (l *Layer) Neurons() int {
	return l.neurons
}

// State returns the lifecycle state.
func (l *Layer) State() State {
	return l.state
}

// Operations returns the operation sequence. It is empty before setup.
func (l *Layer) Operations() []ops.Operation {
	return l.operations
}

// Input returns the input of the last Forward call.
func (l *Layer) Input() *mat.Dense {
	return l.input
}

// Output returns the output of the last Forward call.
func (l *Layer) Output() *mat.Dense {
	return l.output
}
