package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// WeightMultiply is the matrix product of the input and a weight parameter:
// output = X @ W.
//
// Backward pass:
//   - dX = G @ W^T
//   - dW = X^T @ G
type WeightMultiply struct{}

// NewWeightMultiply creates a WeightMultiply operation owning weight,
// shaped [in_features, out_features].
func NewWeightMultiply(weight *mat.Dense) *ParamOp {
	return NewParam("WeightMultiply", weight, WeightMultiply{})
}

// Output computes X @ W. The input's column count must equal W's row count.
func (WeightMultiply) Output(input, weight *mat.Dense) (*mat.Dense, error) {
	rows, cols := input.Dims()
	wRows, _ := weight.Dims()
	if cols != wRows {
		return nil, &tensor.ShapeMismatchError{
			Op:       "WeightMultiply.Forward: input",
			Expected: tensor.Shape{rows, wRows},
			Actual:   tensor.Shape{rows, cols},
		}
	}

	var out mat.Dense
	out.Mul(input, weight)
	return &out, nil
}

// InputGrad computes G @ W^T.
func (WeightMultiply) InputGrad(_, _, weight, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Mul(outputGrad, weight.T())
	return &grad
}

// ParamGrad computes X^T @ G.
func (WeightMultiply) ParamGrad(input, _, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Mul(input.T(), outputGrad)
	return &grad
}
