package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// LossKernel holds the math of a loss variant.
type LossKernel interface {
	Output(prediction, target *mat.Dense) float64
	InputGrad(prediction, target *mat.Dense) *mat.Dense
}

// Loss turns a prediction and a target into a scalar error and, on Backward,
// the gradient of that error with respect to the prediction.
//
// The zero value has no kernel and fails with tensor.ErrNotImplemented.
type Loss struct {
	name       string
	kernel     LossKernel
	prediction *mat.Dense
	target     *mat.Dense
	inputGrad  *mat.Dense
}

// NewLoss creates a loss computing with kernel.
func NewLoss(name string, kernel LossKernel) *Loss {
	return &Loss{name: name, kernel: kernel}
}

// Name returns the loss name.
func (l *Loss) Name() string {
	if l.name == "" {
		return "Loss"
	}
	return l.name
}

// Forward computes the loss.
//
// Parameters:
//   - prediction: Model predictions with shape [batch_size, ...]
//   - target: Ground truth with the same shape as prediction
func (l *Loss) Forward(prediction, target *mat.Dense) (float64, error) {
	if l.kernel == nil {
		return 0, errors.Wrapf(tensor.ErrNotImplemented, "%s.Forward", l.Name())
	}
	if err := tensor.CheckSameShape(l.Name()+".Forward: target", prediction, target); err != nil {
		return 0, err
	}

	l.prediction = prediction
	l.target = target
	return l.kernel.Output(prediction, target), nil
}

// Backward returns the gradient of the last loss with respect to the prediction.
func (l *Loss) Backward() (*mat.Dense, error) {
	if l.kernel == nil {
		return nil, errors.Wrapf(tensor.ErrNotImplemented, "%s.Backward", l.Name())
	}
	if l.prediction == nil {
		return nil, errors.Wrapf(tensor.ErrBackwardBeforeForward, "%s.Backward", l.Name())
	}

	inputGrad := l.kernel.InputGrad(l.prediction, l.target)
	if err := tensor.CheckSameShape(l.Name()+".Backward: input grad", l.prediction, inputGrad); err != nil {
		return nil, err
	}

	l.inputGrad = inputGrad
	return inputGrad, nil
}

// MeanSquaredError is squared error normalized by batch size:
//
//	loss = sum((prediction - target)²) / batch_size
//	grad = 2 * (prediction - target) / batch_size
//
// The divisor is the number of rows, not the number of elements.
type MeanSquaredError struct{}

// NewMeanSquaredError creates a new MSE loss.
func NewMeanSquaredError() *Loss {
	return NewLoss("MeanSquaredError", MeanSquaredError{})
}

// Output computes sum((prediction - target)²) / rows.
func (MeanSquaredError) Output(prediction, target *mat.Dense) float64 {
	var diff mat.Dense
	diff.Sub(prediction, target)
	data := diff.RawMatrix().Data

	rows, _ := prediction.Dims()
	return floats.Dot(data, data) / float64(rows)
}

// InputGrad computes 2 * (prediction - target) / rows.
func (MeanSquaredError) InputGrad(prediction, target *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Sub(prediction, target)

	rows, _ := prediction.Dims()
	grad.Scale(2.0/float64(rows), &grad)
	return &grad
}
